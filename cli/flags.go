package cli

const (
	FlagHome = "home"
	FlagHex  = "hex"
)
