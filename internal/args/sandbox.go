package args

import (
	"context"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// The transform snippet runs in a restricted state: base, string, table and
// math libraries only, so scripts cannot touch the filesystem, the process
// environment or the network. A wall-clock timeout bounds runaway loops.

const defaultTimeoutMs = 1000

func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		RegistrySize:    256,
		RegistryMaxSize: 4096,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

// runSandboxed executes code with the given globals bound and returns the
// single value the script produced, converted back to a Go value.
func runSandboxed(code string, globals map[string]any, timeoutMs int) (any, error) {
	L := newSandboxState()
	defer L.Close()

	if timeoutMs > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
		L.SetContext(ctx)
	}

	for k, v := range globals {
		L.SetGlobal(k, toLValue(L, v))
	}

	fn, err := L.LoadString(code)
	if err != nil {
		return nil, err
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, err
	}
	ret := L.Get(-1)
	L.Pop(1)
	return fromLValue(ret), nil
}

// toLValue converts a Go value to a Lua value. Unsupported kinds become nil.
func toLValue(L *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(x)
	case bool:
		if x {
			return lua.LTrue
		}
		return lua.LFalse
	case int:
		return lua.LNumber(float64(x))
	case int64:
		return lua.LNumber(float64(x))
	case float64:
		return lua.LNumber(x)
	case map[string]any:
		tbl := L.NewTable()
		for k, v2 := range x {
			tbl.RawSetString(k, toLValue(L, v2))
		}
		return tbl
	case []any:
		tbl := L.NewTable()
		for i, v2 := range x {
			tbl.RawSetInt(i+1, toLValue(L, v2))
		}
		return tbl
	case []string:
		tbl := L.NewTable()
		for i, v2 := range x {
			tbl.RawSetInt(i+1, lua.LString(v2))
		}
		return tbl
	default:
		return lua.LNil
	}
}

// fromLValue converts a Lua value back to a Go value. Tables with positive
// integer keys come back as slices, anything else as string-keyed maps; an
// empty table is an empty slice.
func fromLValue(v lua.LValue) any {
	switch x := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(x)
	case lua.LNumber:
		return float64(x)
	case lua.LString:
		return string(x)
	case *lua.LTable:
		n := x.MaxN()
		if n > 0 {
			out := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				out = append(out, fromLValue(x.RawGetInt(i)))
			}
			return out
		}
		out := map[string]any{}
		x.ForEach(func(k, v2 lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				out[string(ks)] = fromLValue(v2)
			}
		})
		if len(out) == 0 {
			return []any{}
		}
		return out
	default:
		return nil
	}
}
