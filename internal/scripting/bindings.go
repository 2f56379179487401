package scripting

import (
	"fmt"

	"github.com/kon-engine/kon/internal/core/ecs"
	"github.com/kon-engine/kon/internal/data"
	lua "github.com/yuin/gopher-lua"
)

const entityTypeName = "ecs.entity"

func (e *Engine) registerEntityType() {
	mt := e.vm.NewTypeMetatable(entityTypeName)
	e.vm.SetField(mt, "__index", e.vm.SetFuncs(e.vm.NewTable(), map[string]lua.LGFunction{
		"id": func(L *lua.LState) int {
			L.Push(lua.LNumber(checkEntity(L, 1).ID()))
			return 1
		},
		"generation": func(L *lua.LState) int {
			L.Push(lua.LNumber(checkEntity(L, 1).Generation()))
			return 1
		},
	}))
	e.vm.SetField(mt, "__tostring", e.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(checkEntity(L, 1).String()))
		return 1
	}))
	e.vm.SetField(mt, "__eq", e.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(checkEntity(L, 1) == checkEntity(L, 2)))
		return 1
	}))
}

func (e *Engine) pushEntity(L *lua.LState, ent ecs.Entity) {
	ud := L.NewUserData()
	ud.Value = ent
	L.SetMetatable(ud, L.GetTypeMetatable(entityTypeName))
	L.Push(ud)
}

func checkEntity(L *lua.LState, n int) ecs.Entity {
	ud := L.CheckUserData(n)
	ent, ok := ud.Value.(ecs.Entity)
	if !ok {
		L.ArgError(n, "entity expected")
	}
	return ent
}

func (e *Engine) exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"spawn":         e.luaSpawn,
		"destroy":       e.luaDestroy,
		"defer_destroy": e.luaDeferDestroy,
		"alive":         e.luaAlive,
		"insert":        e.luaInsert,
		"remove":        e.luaRemove,
		"get":           e.luaGet,
		"tag":           e.luaTag,
		"untag":         e.luaUntag,
		"has_tag":       e.luaHasTag,
		"tags":          e.luaTags,
		"count":         e.luaCount,
		"query":         e.luaQuery,
		"entity_count":  e.luaEntityCount,
	}
}

// ecs.spawn(tag, ...) -> entity
func (e *Engine) luaSpawn(L *lua.LState) int {
	b := e.world.Spawn()
	for i := 1; i <= L.GetTop(); i++ {
		b.Tag(L.CheckString(i))
	}
	e.pushEntity(L, b.ID())
	return 1
}

// ecs.destroy(e) -> bool
func (e *Engine) luaDestroy(L *lua.LState) int {
	L.Push(lua.LBool(e.world.Destroy(checkEntity(L, 1))))
	return 1
}

// ecs.defer_destroy(e)
func (e *Engine) luaDeferDestroy(L *lua.LState) int {
	e.world.DeferDestroy(checkEntity(L, 1))
	return 0
}

// ecs.alive(e) -> bool
func (e *Engine) luaAlive(L *lua.LState) int {
	L.Push(lua.LBool(e.world.IsAlive(checkEntity(L, 1))))
	return 1
}

// ecs.insert(e, name, {field = value, ...})
func (e *Engine) luaInsert(L *lua.LState) int {
	ent := checkEntity(L, 1)
	name := L.CheckString(2)
	fields := tableToFields(L.OptTable(3, L.NewTable()))
	if err := e.reg.Insert(e.world, ent, name, fields); err != nil {
		L.RaiseError("ecs.insert: %v", err)
	}
	return 0
}

// ecs.remove(e, name) -> bool
func (e *Engine) luaRemove(L *lua.LState) int {
	ent := checkEntity(L, 1)
	b, ok := e.reg.Lookup(L.CheckString(2))
	if !ok {
		L.ArgError(2, "unknown component")
	}
	L.Push(lua.LBool(e.world.RemoveKey(ent, b.Key)))
	return 1
}

// ecs.get(e, name) -> table or nil
func (e *Engine) luaGet(L *lua.LState) int {
	ent := checkEntity(L, 1)
	b, ok := e.reg.Lookup(L.CheckString(2))
	if !ok {
		L.ArgError(2, "unknown component")
	}
	f, ok := b.Encode(e.world, ent)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(fieldsToTable(L, f))
	return 1
}

// ecs.tag(e, name)
func (e *Engine) luaTag(L *lua.LState) int {
	ent := checkEntity(L, 1)
	name := L.CheckString(2)
	if _, known := e.world.Tags().Lookup(name); !known && e.world.Tags().Len() >= ecs.MaxTags {
		L.RaiseError("ecs.tag: tag limit of %d reached", ecs.MaxTags)
	}
	e.world.Tag(ent, name)
	return 0
}

// ecs.untag(e, name)
func (e *Engine) luaUntag(L *lua.LState) int {
	e.world.Untag(checkEntity(L, 1), L.CheckString(2))
	return 0
}

// ecs.has_tag(e, name) -> bool
func (e *Engine) luaHasTag(L *lua.LState) int {
	L.Push(lua.LBool(e.world.HasTag(checkEntity(L, 1), L.CheckString(2))))
	return 1
}

// ecs.tags(e) -> {name, ...}
func (e *Engine) luaTags(L *lua.LState) int {
	t := L.NewTable()
	for _, name := range e.world.TagsOf(checkEntity(L, 1)) {
		t.Append(lua.LString(name))
	}
	L.Push(t)
	return 1
}

// ecs.count(name) -> number of entities with that component
func (e *Engine) luaCount(L *lua.LState) int {
	b, ok := e.reg.Lookup(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown component")
	}
	L.Push(lua.LNumber(e.world.Match(b.Key).Count()))
	return 1
}

// ecs.query({name, ...}, {tagged = {...}, not_tagged = {...}}) -> {entity, ...}
// The result is collected up front, so the loop body may mutate the World.
func (e *Engine) luaQuery(L *lua.LState) int {
	names := L.CheckTable(1)
	var keys []ecs.TypeKey
	var bad error
	names.ForEach(func(_, v lua.LValue) {
		if bad != nil {
			return
		}
		b, ok := e.reg.Lookup(v.String())
		if !ok {
			bad = fmt.Errorf("unknown component %q", v.String())
			return
		}
		for _, k := range keys {
			if k == b.Key {
				bad = fmt.Errorf("component %q listed twice", v.String())
				return
			}
		}
		keys = append(keys, b.Key)
	})
	if bad != nil {
		L.RaiseError("ecs.query: %v", bad)
	}
	if len(keys) == 0 {
		L.ArgError(1, "at least one component name expected")
	}

	m := e.world.Match(keys...)
	if opts := L.OptTable(2, nil); opts != nil {
		m.Tagged(stringList(opts.RawGetString("tagged"))...)
		m.NotTagged(stringList(opts.RawGetString("not_tagged"))...)
	}
	out := L.NewTable()
	for _, ent := range m.Entities() {
		e.pushEntity(L, ent)
		out.Append(L.Get(-1))
		L.Pop(1)
	}
	L.Push(out)
	return 1
}

// ecs.entity_count() -> number
func (e *Engine) luaEntityCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.world.EntityCount()))
	return 1
}

func stringList(v lua.LValue) []string {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	t.ForEach(func(_, s lua.LValue) { out = append(out, s.String()) })
	return out
}

func tableToFields(t *lua.LTable) data.Fields {
	f := data.Fields{}
	t.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			return
		}
		switch lv := v.(type) {
		case lua.LNumber:
			f[string(key)] = float64(lv)
		case lua.LString:
			f[string(key)] = string(lv)
		case lua.LBool:
			f[string(key)] = bool(lv)
		}
	})
	return f
}

func fieldsToTable(L *lua.LState, f data.Fields) *lua.LTable {
	t := L.NewTable()
	for k, v := range f {
		switch x := v.(type) {
		case int:
			t.RawSetString(k, lua.LNumber(x))
		case float64:
			t.RawSetString(k, lua.LNumber(x))
		case string:
			t.RawSetString(k, lua.LString(x))
		case bool:
			t.RawSetString(k, lua.LBool(x))
		}
	}
	return t
}
