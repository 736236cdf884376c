package paths

import (
	"flag"
)

// SetupDataDirFlag registers --data_dir, the first directory Find searches.
func SetupDataDirFlag() {
	flag.StringVar(&dataDir, "data_dir", "", "Directory with game resource files; searched before $"+EnvDataDir)
}

// SetupFilePathFlag registers a string flag holding the path to fileName.
// Its default is what Find returns at registration time, so it already
// honors $SHADOWDIVE_DATA; --data_dir is only known after parsing, and
// callers look again with Find when the flag is still empty.
func SetupFilePathFlag(fileName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Find(fileName), "Path to "+fileName+"; searched for in --data_dir, $"+EnvDataDir+", . and resources if empty")
}
