//go:build gpu

package main

// Building with -tags gpu enables gg's GPU accelerator. Without a usable
// adapter gg falls back to the CPU rasterizer and logs a warning.
import _ "github.com/gogpu/gg/gpu"
