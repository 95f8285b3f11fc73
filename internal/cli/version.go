package cli

// Version is the numwords release reported by --version
const Version = "0.2.0"
