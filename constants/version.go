package constants

// Version is replaced at release time via -ldflags.
var Version = "source"
