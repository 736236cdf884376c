// Command sdtool inspects, round-trips and verifies game resource files.
//
// Usage:
//
//	sdtool [flags] info FILE...
//	sdtool [flags] roundtrip IN OUT
//	sdtool [flags] verify FILE...
//	sdtool [flags] export-sound [SOUNDS] OUT.wav
//
// Flags go before the command. File names that do not exist as given are
// looked up in --data_dir, $SHADOWDIVE_DATA and ./resources. Without a
// SOUNDS argument, export-sound reads the container named by --sounds.
package main

import (
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-shadowdive/paths"
)

var (
	kindFlag   = flag.String("kind", "", "resource kind: anim or sounds; guessed from the file extension if empty")
	jobs       = flag.Int("jobs", 4, "number of files info and verify process in parallel")
	soundIndex = flag.Int("index", 0, "index of the sound export-sound writes")

	soundsPath string
)

// soundsFile is the sound container export-sound looks for by default.
const soundsFile = "SOUNDS.DAT"

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: %s [flags] COMMAND ARGS...

commands:
  info FILE...               print a summary of each file
  roundtrip IN OUT           decode IN and encode it to OUT
  verify FILE...             check that each file re-encodes byte for byte
  export-sound [SOUNDS] OUT  write one sound (--index) as a WAV file;
                             SOUNDS defaults to --sounds

flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	paths.SetupDataDirFlag()
	paths.SetupFilePathFlag(soundsFile, "sounds", &soundsPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	var err error
	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "info":
		err = infoCmd(args)
	case "roundtrip":
		err = roundtripCmd(args)
	case "verify":
		err = verifyCmd(args)
	case "export-sound":
		err = exportSoundCmd(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		glog.Errorf("%s: %v", cmd, err)
		glog.Flush()
		os.Exit(1)
	}
}
