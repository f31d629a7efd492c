// SPDX-License-Identifier: EPL-2.0

// Package luabind exposes the sound engine to Lua scripts as the global
// "sound" module.
//
//	local boom = sound.load("boom.wav")
//	boom:set_volume(0.5)
//	boom:play()
//	sound.set_master_volume(0.8)
//
// Every handle function can be called as sound.play(h) or h:play().
package luabind

import (
	"errors"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/ik5/sndmix/audio"
)

const (
	ModuleName   = "sound"
	handleType   = "sound.handle"
	updateGlobal = "update"
)

type Binding struct {
	mixer   *audio.Mixer
	storage audio.Storage
	logger  *zap.Logger
}

func New(m *audio.Mixer, st audio.Storage, logger *zap.Logger) *Binding {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Binding{mixer: m, storage: st, logger: logger}
}

// Register installs the sound module as a global and defines the handle
// metatable.
func (b *Binding) Register(L *lua.LState) {
	b.defineHandle(L)
	L.SetGlobal(ModuleName, b.module(L))
}

// Loader lets scripts use require("sound") when installed with
// L.PreloadModule.
func (b *Binding) Loader(L *lua.LState) int {
	b.defineHandle(L)
	L.Push(b.module(L))

	return 1
}

func (b *Binding) defineHandle(L *lua.LState) {
	mt := L.NewTypeMetatable(handleType)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), b.handleFuncs()))
	L.SetField(mt, "__tostring", L.NewFunction(b.handleString))
}

func (b *Binding) module(L *lua.LState) *lua.LTable {
	mod := L.SetFuncs(L.NewTable(), b.handleFuncs())
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"load":              b.load,
		"set_master_volume": b.setMasterVolume,
		"get_master_volume": b.getMasterVolume,
		"stop_all":          b.stopAll,
	})

	return mod
}

func (b *Binding) handleFuncs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"play":       b.play,
		"stop":       b.stop,
		"pause":      b.pause,
		"unload":     b.unload,
		"set_loop":   b.setLoop,
		"is_looping": b.isLooping,
		"is_playing": b.isPlaying,
		"set_volume": b.setVolume,
		"get_volume": b.getVolume,
		"state":      b.state,
	}
}

// CallUpdate calls the script's global update(dt) if there is one. It
// reports whether the function exists.
func (b *Binding) CallUpdate(L *lua.LState, dt float64) (bool, error) {
	fn, ok := updateFunc(L)
	if !ok {
		return false, nil
	}

	err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LNumber(dt))

	return true, err
}

// HasUpdate reports whether the script defines a global update(dt).
func (b *Binding) HasUpdate(L *lua.LState) bool {
	_, ok := updateFunc(L)
	return ok
}

func updateFunc(L *lua.LState) (*lua.LFunction, bool) {
	fn, ok := L.GetGlobal(updateGlobal).(*lua.LFunction)
	return fn, ok
}

func (b *Binding) load(L *lua.LState) int {
	name := L.CheckString(1)

	inst, err := b.mixer.Load(b.storage, name)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))

		return 2
	}

	ud := L.NewUserData()
	ud.Value = inst
	L.SetMetatable(ud, L.GetTypeMetatable(handleType))
	L.Push(ud)

	return 1
}

func checkHandle(L *lua.LState) *audio.Instance {
	ud := L.CheckUserData(1)
	if inst, ok := ud.Value.(*audio.Instance); ok {
		return inst
	}

	L.ArgError(1, "sound handle expected")

	return nil
}

func (b *Binding) play(L *lua.LState) int {
	L.Push(lua.LBool(checkHandle(L).Play()))
	return 1
}

func (b *Binding) stop(L *lua.LState) int {
	checkHandle(L).Stop()
	return 0
}

func (b *Binding) pause(L *lua.LState) int {
	L.Push(lua.LBool(checkHandle(L).Pause()))
	return 1
}

func (b *Binding) unload(L *lua.LState) int {
	inst := checkHandle(L)

	if err := b.mixer.Unload(inst); err != nil && !errors.Is(err, audio.ErrNotRegistered) {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))

		return 2
	}

	L.Push(lua.LTrue)

	return 1
}

func (b *Binding) setLoop(L *lua.LState) int {
	inst := checkHandle(L)
	inst.SetLoop(L.CheckBool(2))

	return 0
}

func (b *Binding) isLooping(L *lua.LState) int {
	L.Push(lua.LBool(checkHandle(L).IsLooping()))
	return 1
}

func (b *Binding) isPlaying(L *lua.LState) int {
	L.Push(lua.LBool(checkHandle(L).IsPlaying()))
	return 1
}

func (b *Binding) setVolume(L *lua.LState) int {
	inst := checkHandle(L)
	inst.SetVolume(float32(L.CheckNumber(2)))

	return 0
}

func (b *Binding) getVolume(L *lua.LState) int {
	L.Push(lua.LNumber(checkHandle(L).Volume()))
	return 1
}

func (b *Binding) state(L *lua.LState) int {
	L.Push(lua.LString(checkHandle(L).State().String()))
	return 1
}

func (b *Binding) handleString(L *lua.LState) int {
	inst := checkHandle(L)
	L.Push(lua.LString(handleType + "(" + inst.Name() + ")"))

	return 1
}

func (b *Binding) setMasterVolume(L *lua.LState) int {
	b.mixer.SetMasterVolume(float32(L.CheckNumber(1)))
	return 0
}

func (b *Binding) getMasterVolume(L *lua.LState) int {
	L.Push(lua.LNumber(b.mixer.MasterVolume()))
	return 1
}

func (b *Binding) stopAll(L *lua.LState) int {
	b.mixer.StopAll()
	b.logger.Debug("script stopped all sounds")

	return 0
}
