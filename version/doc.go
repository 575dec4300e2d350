// Package version reports the build version of openaikit binaries.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/openaikit/version.Version=1.0.0" ./cmd/openai
//
// Missing values fall back to the VCS stamps recorded by the Go toolchain.
package version
