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

package prefs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// post set hook. called after the value has been updated even if the value
// hasn't changed
type hook func(value Value) error

func (h hook) call(v Value) error {
	if h == nil {
		return nil
	}
	return h(v)
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Bool
	post  hook
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		p.value.Store(strings.ToLower(strings.TrimSpace(v)) == "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.post.call(p.value.Load())
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// SetHookPost sets the function to be called after the value is updated.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value atomic.Int64
	post  hook
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set new value to Int type. New value can be an int or a string. Strings
// are parsed with base prefix rules, so "0xff" is a valid value.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		p.value.Store(int64(v))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
		p.value.Store(n)
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.post.call(int(p.value.Load()))
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// SetHookPost sets the function to be called after the value is updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Float implements a floating-point type in the prefs system.
type Float struct {
	value atomic.Uint64
	post  hook
}

func (p *Float) load() float64 {
	return math.Float64frombits(p.value.Load())
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.load(), 'f', -1, 64)
}

// Set new value to Float type. New value can be a float64, float32 or string.
func (p *Float) Set(v Value) error {
	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case string:
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}
	p.value.Store(math.Float64bits(f))
	return p.post.call(f)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// SetHookPost sets the function to be called after the value is updated.
func (p *Float) SetHookPost(f func(value Value) error) {
	p.post = f
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.Value // string
	post  hook
}

func (p *String) String() string {
	if v := p.value.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Set new value to String type. Any value is accepted and converted to a
// string with the %v verb.
func (p *String) Set(v Value) error {
	s := fmt.Sprintf("%v", v)
	p.value.Store(strings.TrimSpace(s))
	return p.post.call(p.String())
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// SetHookPost sets the function to be called after the value is updated.
func (p *String) SetHookPost(f func(value Value) error) {
	p.post = f
}
