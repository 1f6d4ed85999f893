package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xorb64Version = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())
	b.Test().Does(Go().TestAll())

	xorb64 := NewAppBuild("xorb64", "cmd/xorb64", xorb64Version)
	xorb64.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", xorb64Version).
			CgoEnabled(false)
	})
	xorb64.Variant("windows", "amd64")
	xorb64.Variant("linux", "amd64")
	xorb64.Variant("linux", "arm64")
	xorb64.Variant("darwin", "amd64")
	xorb64.Variant("darwin", "arm64")
	b.ImportApp(xorb64)

	b.Execute()
}
