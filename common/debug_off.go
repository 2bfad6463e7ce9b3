//go:build !debug

package common

const DebugBuild = false
