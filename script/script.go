// This file is part of maikorhost.
//
// maikorhost is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// maikorhost is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with maikorhost.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"fmt"

	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/logger"
	"github.com/maikorhost/maikorhost/overrides"
	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/vm"
	"github.com/maikorhost/maikorhost/vm/memorymap"

	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern of errors returned by Run() and RunFile().
const ScriptError = "script: %v"

// Target is the machine being scripted. It is satisfied by host.Host.
type Target interface {
	Overrides() *overrides.Table
	State() *vm.State
}

// Controller runs Lua scripts against a Target.
type Controller struct {
	target Target
	L      *lua.LState
}

// NewController is the preferred method of initialisation for the Controller
// type. Close() should be called when the controller is no longer required.
func NewController(target Target) *Controller {
	ctl := &Controller{
		target: target,
		L:      lua.NewState(),
	}

	ctl.L.SetGlobal("poke", ctl.L.NewFunction(ctl.poke))
	ctl.L.SetGlobal("unpoke", ctl.L.NewFunction(ctl.unpoke))
	ctl.L.SetGlobal("unpokeall", ctl.L.NewFunction(ctl.unpokeAll))
	ctl.L.SetGlobal("peek", ctl.L.NewFunction(ctl.peek))
	ctl.L.SetGlobal("overrides", ctl.L.NewFunction(ctl.overrides))
	ctl.L.SetGlobal("area", ctl.L.NewFunction(ctl.area))
	ctl.L.SetGlobal("sprite", ctl.L.NewFunction(ctl.sprite))
	ctl.L.SetGlobal("log", ctl.L.NewFunction(ctl.log))

	return ctl
}

// Close the Lua state.
func (ctl *Controller) Close() {
	ctl.L.Close()
}

// Run the Lua source.
func (ctl *Controller) Run(src string) error {
	if err := ctl.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile loads and runs the Lua file.
func (ctl *Controller) RunFile(filename string) error {
	if err := ctl.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a >= memorymap.MemorySize {
		L.ArgError(n, fmt.Sprintf("address out of range: %#x", a))
	}
	return uint16(a)
}

func checkValue(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range: %#x", v))
	}
	return uint8(v)
}

func (ctl *Controller) poke(L *lua.LState) int {
	a := checkAddress(L, 1)
	v := checkValue(L, 2)
	ctl.target.Overrides().Set(a, v)
	return 0
}

func (ctl *Controller) unpoke(L *lua.LState) int {
	ctl.target.Overrides().Clear(checkAddress(L, 1))
	return 0
}

func (ctl *Controller) unpokeAll(L *lua.LState) int {
	ctl.target.Overrides().ClearAll()
	return 0
}

func (ctl *Controller) peek(L *lua.LState) int {
	a := checkAddress(L, 1)
	L.Push(lua.LNumber(ctl.target.State().Memory[a]))
	return 1
}

func (ctl *Controller) overrides(L *lua.LState) int {
	ovr := ctl.target.Overrides()
	tbl := L.NewTable()
	for _, a := range ovr.Addresses() {
		v, _ := ovr.Get(a)
		tbl.RawSetInt(int(a), lua.LNumber(v))
	}
	L.Push(tbl)
	return 1
}

func (ctl *Controller) area(L *lua.LState) int {
	a := checkAddress(L, 1)
	L.Push(lua.LString(memorymap.MapAddress(a).String()))
	return 1
}

func (ctl *Controller) sprite(L *lua.LState) int {
	slot := L.CheckInt(1)
	if slot < 0 || slot >= memorymap.SpriteCount {
		L.ArgError(1, fmt.Sprintf("sprite slot out of range: %d", slot))
	}

	a := int(memorymap.OriginSpriteTable) + slot*memorymap.SizeSprite
	spr := raster.DecodeSprite(ctl.target.State().Memory[a : a+memorymap.SizeSprite])

	tbl := L.NewTable()
	L.SetField(tbl, "x", lua.LNumber(spr.X))
	L.SetField(tbl, "y", lua.LNumber(spr.Y))
	L.SetField(tbl, "id", lua.LNumber(spr.ID))
	L.SetField(tbl, "atlas", lua.LNumber(spr.Atlas))
	L.SetField(tbl, "palette", lua.LNumber(spr.Palette))
	L.SetField(tbl, "order", lua.LNumber(spr.Order))
	L.SetField(tbl, "enabled", lua.LBool(spr.Enabled))
	L.SetField(tbl, "flipH", lua.LBool(spr.FlipH))
	L.SetField(tbl, "flipV", lua.LBool(spr.FlipV))
	L.SetField(tbl, "halfAlpha", lua.LBool(spr.HalfAlpha))
	L.Push(tbl)
	return 1
}

func (ctl *Controller) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
