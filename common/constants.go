package common

const (
	SrcFileExtension = ".c"
	ConfigFileName   = "atomc.toml"
	HistoryFileName  = ".atomc_history"
	AtomCVersion     = "0.1.0"
)
