package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/network"
)

func newJob(t *testing.T, text string) (job *Job, out *bytes.Buffer) {
	out = &bytes.Buffer{}
	job = &Job{Input: strings.NewReader(""), Output: out}
	if len(text) != 0 {
		prog, err := cpu.ParseProgramString(text)
		assert.NoError(t, err)
		job.Program = prog
	}
	return
}

func TestSelectMode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mode string
		set  []string
		want string
	}){
		{MODE_RUN, nil, MODE_RUN},
		{MODE_RUN, []string{"v", "pad", "dialect"}, MODE_RUN},
		{MODE_RUN, []string{"net"}, MODE_NET},
		{MODE_RUN, []string{"paint"}, MODE_PAINT},
		{MODE_RUN, []string{"maze"}, MODE_MAZE},
		{MODE_RUN, []string{"d"}, MODE_DISASSEMBLE},
		{MODE_RUN, []string{"amp", "feedback"}, MODE_AMP},
		{MODE_RUN, []string{"net", "script"}, MODE_SCRIPT},
		{MODE_MAZE, nil, MODE_MAZE},
		{MODE_MAZE, []string{"paint"}, MODE_PAINT},
	}

	for _, entry := range table {
		cfg := DefaultConfig()
		cfg.Mode = entry.mode
		set := map[string]bool{}
		for _, name := range entry.set {
			set[name] = true
		}
		assert.Equal(entry.want, selectMode(cfg, set), "%v %v", entry.mode, entry.set)
	}
}

func TestRunDefault(t *testing.T) {
	assert := assert.New(t)

	// The default network size never selects the network.
	cfg := DefaultConfig()
	assert.Equal(50, cfg.Network.Size)

	job, out := newJob(t, "104,42,99")
	err := run(context.Background(), cfg, job)
	assert.NoError(err)
	assert.Equal("42\n", out.String())

	job, out = newJob(t, "3,0,4,0,99")
	job.Input = strings.NewReader("-17")
	err = run(context.Background(), cfg, job)
	assert.NoError(err)
	assert.Equal("-17\n", out.String())
}

func TestRunAscii(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Encoding = "ascii"

	job, out := newJob(t, "104,79,104,75,104,10,99")
	err := run(context.Background(), cfg, job)
	assert.NoError(err)
	assert.Equal("OK\n", out.String())
}

func TestRunDisassemble(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Mode = MODE_DISASSEMBLE

	job, out := newJob(t, "104,42,99")
	err := run(context.Background(), cfg, job)
	assert.NoError(err)
	assert.Equal("0000: out 42\n0002: halt\n", out.String())
}

func TestRunAmp(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Mode = MODE_AMP

	job, out := newJob(t, "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	job.Phases = []int64{0, 1, 2, 3, 4}
	err := run(context.Background(), cfg, job)
	assert.NoError(err)
	assert.Equal("43210 [4 3 2 1 0]\n", out.String())
}

func TestRunNet(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Mode = MODE_NET
	cfg.Network.Size = 2

	job, _ := newJob(t, "99")
	err := run(context.Background(), cfg, job)
	assert.ErrorIs(err, network.ErrNetworkHalted)

	cfg.Network.Size = 0
	err = run(context.Background(), cfg, job)
	assert.Error(err)
}

func TestRunPaint(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Mode = MODE_PAINT

	// Paints the starting panel white, turns right, and halts.
	job, out := newJob(t, "3,100,104,1,104,1,99")
	err := run(context.Background(), cfg, job)
	assert.NoError(err)
	assert.Equal("1\n#\n", out.String())
}

func TestRunMaze(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Mode = MODE_MAZE

	// Every direction is a wall.
	job, _ := newJob(t, "3,100,104,0,1105,1,0")
	err := run(context.Background(), cfg, job)
	assert.ErrorIs(err, ErrNoTarget)
}

func TestRunScript(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "check.star")
	assert.NoError(os.WriteFile(path, []byte(`
out = machine(program).run()
if out != [42]:
    fail("unexpected output", out)
`), 0o644))

	cfg := DefaultConfig()
	cfg.Mode = MODE_SCRIPT

	job, _ := newJob(t, "104,42,99")
	job.Script = path
	err := run(context.Background(), cfg, job)
	assert.NoError(err)

	job, _ = newJob(t, "104,7,99")
	job.Script = path
	err = run(context.Background(), cfg, job)
	assert.Error(err)
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	job, _ := newJob(t, "")
	err := run(context.Background(), cfg, job)
	assert.ErrorIs(err, ErrNoProgram)

	cfg.Mode = "turbo"
	job, _ = newJob(t, "99")
	err = run(context.Background(), cfg, job)
	assert.ErrorIs(err, ErrMode)

	cfg = DefaultConfig()
	job, _ = newJob(t, "42")
	err = run(context.Background(), cfg, job)
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)
}
