// This file is part of appleie.
//
// appleie is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// appleie is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with appleie.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"fmt"
	"io"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/appleie/appleie/assembler"
	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware"
	"github.com/appleie/appleie/hardware/cpu/execution"
	"github.com/appleie/appleie/hardware/cpu/registers"
	"github.com/appleie/appleie/translate"
)

// ScriptError is the pattern used for all errors returned by Run().
const ScriptError = "script: %v"

// session is the context of a single call to Run().
type session struct {
	m *hardware.Machine
}

// Run the Starlark source. The filename is used in error messages and the
// source can be any type accepted by starlark.ExecFileOptions(), including
// nil, in which case the source is read from the named file.
func Run(m *hardware.Machine, filename string, source any, output io.Writer) error {
	if m == nil {
		return curated.Errorf(ScriptError, "a machine is required")
	}

	s := &session{m: m}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(output, msg)
		},
	}

	predeclared := starlark.StringDict{
		"assemble":     starlark.NewBuiltin("assemble", s.assemble),
		"load_program": starlark.NewBuiltin("load_program", s.load),
		"run":          starlark.NewBuiltin("run", s.run),
		"step":         starlark.NewBuiltin("step", s.step),
		"reset":        starlark.NewBuiltin("reset", s.reset),
		"reg":          starlark.NewBuiltin("reg", s.reg),
		"flag":         starlark.NewBuiltin("flag", s.flag),
		"peek":         starlark.NewBuiltin("peek", s.peek),
		"poke":         starlark.NewBuiltin("poke", s.poke),
		"cycles":       starlark.NewBuiltin("cycles", s.cycles),
		"halted":       starlark.NewBuiltin("halted", s.halted),
	}

	opts := syntax.FileOptions{}
	_, err := starlark.ExecFileOptions(&opts, thread, filename, source, predeclared)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

func (s *session) assemble(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var src string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "src", &src); err != nil {
		return nil, err
	}

	prog, err := assembler.Assemble(src)
	if err != nil {
		return nil, err
	}

	l := make([]starlark.Value, len(prog))
	for i, v := range prog {
		l[i] = starlark.MakeInt(int(v))
	}

	return starlark.NewList(l), nil
}

func (s *session) load(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var origin int
	var prog starlark.Iterable
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "origin", &origin, "program", &prog); err != nil {
		return nil, err
	}

	if origin < 0 || origin > 0xffff {
		return nil, fmt.Errorf("origin must be a 16 bit address")
	}

	data, err := toBytes(prog)
	if err != nil {
		return nil, err
	}

	if err := s.m.Load(uint16(origin), data); err != nil {
		return nil, err
	}

	return starlark.None, nil
}

// toBytes converts an iterable of starlark integers to a slice of bytes.
func toBytes(it starlark.Iterable) ([]uint8, error) {
	var data []uint8

	iter := it.Iterate()
	defer iter.Done()

	var x starlark.Value
	for iter.Next(&x) {
		v, err := starlark.AsInt32(x)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 0xff {
			return nil, fmt.Errorf("value out of range for a byte (%d)", v)
		}
		data = append(data, uint8(v))
	}

	return data, nil
}

func (s *session) run(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}

	var count int
	err := s.m.Run(func(_ *execution.Result) error {
		count++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(count), nil
}

func (s *session) step(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}

	r, err := s.m.Step()
	if err != nil {
		return nil, err
	}

	return starlark.String(r.String()), nil
}

func (s *session) reset(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	s.m.Reset()
	return starlark.None, nil
}

func (s *session) reg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}

	mc := s.m.CPU

	switch strings.ToUpper(name) {
	case "A":
		return starlark.MakeInt(int(mc.A.Value())), nil
	case "X":
		return starlark.MakeInt(int(mc.X.Value())), nil
	case "Y":
		return starlark.MakeInt(int(mc.Y.Value())), nil
	case "SP":
		return starlark.MakeInt(int(mc.SP.Value())), nil
	case "SR":
		return starlark.MakeInt(int(mc.Status.Value())), nil
	case "PC":
		return starlark.MakeInt(int(mc.PC.Address())), nil
	}

	return nil, translate.Error("unrecognized register: %s", name)
}

func (s *session) flag(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}

	f, ok := registers.ParseFlag(name)
	if !ok {
		return nil, translate.Error("unrecognized status flag: %s", name)
	}

	return starlark.Bool(s.m.CPU.Status.Get(f)), nil
}

func (s *session) peek(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "address", &address); err != nil {
		return nil, err
	}
	if address < 0 || address > 0xffff {
		return nil, fmt.Errorf("address must be 16 bit")
	}

	v, err := s.m.Mem.Peek(uint16(address))
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(int(v)), nil
}

func (s *session) poke(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address, value int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "address", &address, "value", &value); err != nil {
		return nil, err
	}
	if address < 0 || address > 0xffff {
		return nil, fmt.Errorf("address must be 16 bit")
	}
	if value < 0 || value > 0xff {
		return nil, fmt.Errorf("value must be 8 bit")
	}

	if err := s.m.Mem.Poke(uint16(address), uint8(value)); err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (s *session) cycles(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return starlark.MakeUint64(s.m.CPU.Clock), nil
}

func (s *session) halted(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return starlark.Bool(s.m.CPU.Halted()), nil
}
