//go:build debug

package common

// DebugBuild enables debug keys, hot reload and the physics overlay.
const DebugBuild = true
