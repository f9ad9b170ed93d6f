package cli

// Version will be set at build time via -ldflags
var Version = "v0.1.0"
