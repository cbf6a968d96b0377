//go:build tools

package main

import (
	_ "honnef.co/go/tools/cmd/staticcheck"
)
