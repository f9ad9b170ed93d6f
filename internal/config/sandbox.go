package config

import (
	lua "github.com/yuin/gopher-lua"
)

// sandboxLuaVM strips a Lua VM down to what a declarative config needs.
// Command execution (os), filesystem access (io), code loading
// (require/dofile/loadfile/load/loadstring and the package table) and
// debug are removed.
// string, table, math and the basic functions stay available.
func sandboxLuaVM(L *lua.LState) {
	for _, name := range []string{"os", "io", "require", "dofile", "loadfile", "load", "loadstring", "package", "debug"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// newSandboxedVM creates a new Lua VM with sandboxing applied.
func newSandboxedVM() *lua.LState {
	L := lua.NewState()
	sandboxLuaVM(L)
	return L
}
