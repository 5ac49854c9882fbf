package conflict

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDecider replays queued answers and records what it was asked.
type scriptedDecider struct {
	choices []Choice
	names   []string
	asked   []string
	err     error
}

func (d *scriptedDecider) Decide(_ context.Context, name, _ string) (Choice, error) {
	d.asked = append(d.asked, name)
	if d.err != nil {
		return 0, d.err
	}
	if len(d.choices) == 0 {
		return Abort, nil
	}
	c := d.choices[0]
	d.choices = d.choices[1:]
	return c, nil
}

func (d *scriptedDecider) NewName(_ context.Context, _ string) (string, error) {
	n := d.names[0]
	d.names = d.names[1:]
	return n, nil
}

func newFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/work", 0o755))
	for _, f := range files {
		require.NoError(t, afero.WriteFile(afs, f, []byte("x"), 0o644))
	}
	return afs
}

func TestResolve_NoConflict(t *testing.T) {
	tests := []struct {
		name  string
		setup func(afero.Fs)
	}{
		{name: "missing directory", setup: func(afero.Fs) {}},
		{name: "empty directory", setup: func(afs afero.Fs) { _ = afs.MkdirAll("/work/demo", 0o755) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			afs := newFs(t)
			tt.setup(afs)
			d := &scriptedDecider{}
			r := &Resolver{Fs: afs, WorkDir: "/work", Decider: d}

			got, err := r.Resolve(context.Background(), "demo")
			require.NoError(t, err)
			assert.Equal(t, "demo", got)
			assert.Empty(t, d.asked)
		})
	}
}

func TestResolve_Clear(t *testing.T) {
	afs := newFs(t, "/work/demo/a.txt", "/work/demo/sub/b.txt")
	r := &Resolver{Fs: afs, WorkDir: "/work", Decider: &scriptedDecider{choices: []Choice{Clear}}}

	got, err := r.Resolve(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", got)

	isDir, err := afero.DirExists(afs, "/work/demo")
	require.NoError(t, err)
	assert.True(t, isDir)
	empty, err := afero.IsEmpty(afs, "/work/demo")
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestResolve_Abort(t *testing.T) {
	afs := newFs(t, "/work/demo/a.txt")
	r := &Resolver{Fs: afs, WorkDir: "/work", Decider: &scriptedDecider{choices: []Choice{Abort}}}

	_, err := r.Resolve(context.Background(), "demo")
	require.ErrorIs(t, err, ErrAborted)

	data, err := afero.ReadFile(afs, "/work/demo/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestResolve_RenameLoopsUntilFree(t *testing.T) {
	afs := newFs(t, "/work/demo/a.txt", "/work/demo2/a.txt")
	d := &scriptedDecider{
		choices: []Choice{Rename, Rename},
		names:   []string{"demo2", "  demo3 "},
	}
	var states []State
	r := &Resolver{
		Fs: afs, WorkDir: "/work", Decider: d,
		OnTransition: func(_, to State, _ string) { states = append(states, to) },
	}

	got, err := r.Resolve(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo3", got)
	assert.Equal(t, []string{"demo", "demo2"}, d.asked)
	assert.Equal(t, []State{AwaitingDecision, Renaming, Checking, AwaitingDecision, Renaming, Checking}, states)
}

func TestResolve_RenameThenClear(t *testing.T) {
	afs := newFs(t, "/work/demo/a.txt", "/work/other/b.txt")
	d := &scriptedDecider{choices: []Choice{Rename, Clear}, names: []string{"other"}}
	r := &Resolver{Fs: afs, WorkDir: "/work", Decider: d}

	got, err := r.Resolve(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "other", got)

	exists, err := afero.Exists(afs, "/work/demo/a.txt")
	require.NoError(t, err)
	assert.True(t, exists, "original directory must be untouched")
}

func TestResolve_RegularFile(t *testing.T) {
	afs := newFs(t, "/work/demo")

	r := &Resolver{Fs: afs, WorkDir: "/work", Decider: &scriptedDecider{choices: []Choice{Clear}}}
	_, err := r.Resolve(context.Background(), "demo")
	require.ErrorIs(t, err, ErrNotDirectory)

	r = &Resolver{Fs: afs, WorkDir: "/work", Decider: &scriptedDecider{choices: []Choice{Rename}, names: []string{"fresh"}}}
	got, err := r.Resolve(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

func TestResolve_MaxAttempts(t *testing.T) {
	afs := newFs(t, "/work/demo/a.txt")
	d := &scriptedDecider{choices: []Choice{Rename, Rename, Rename}, names: []string{"demo", "demo", "demo"}}
	r := &Resolver{Fs: afs, WorkDir: "/work", Decider: d, MaxAttempts: 2}

	_, err := r.Resolve(context.Background(), "demo")
	require.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Len(t, d.asked, 2)
}

func TestResolve_DeciderError(t *testing.T) {
	afs := newFs(t, "/work/demo/a.txt")
	boom := errors.New("stdin closed")
	r := &Resolver{Fs: afs, WorkDir: "/work", Decider: &scriptedDecider{err: boom}}

	_, err := r.Resolve(context.Background(), "demo")
	require.ErrorIs(t, err, boom)
}

func TestResolve_InvalidNames(t *testing.T) {
	for _, name := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
		t.Run(name, func(t *testing.T) {
			r := &Resolver{Fs: newFs(t), WorkDir: "/work", Decider: &scriptedDecider{}}
			_, err := r.Resolve(context.Background(), name)
			require.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestResolve_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Resolver{Fs: newFs(t), WorkDir: "/work", Decider: &scriptedDecider{}}

	_, err := r.Resolve(ctx, "demo")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFixed(t *testing.T) {
	afs := newFs(t, "/work/demo/a.txt")
	r := &Resolver{Fs: afs, WorkDir: "/work", Decider: &Fixed{Choice: Abort}}
	_, err := r.Resolve(context.Background(), "demo")
	require.ErrorIs(t, err, ErrAborted)

	f := &Fixed{Choice: Rename}
	_, err = f.NewName(context.Background(), "demo")
	assert.Error(t, err)
}

func TestChoiceAndStateStrings(t *testing.T) {
	assert.Equal(t, "clear", Clear.String())
	assert.Equal(t, "rename", Rename.String())
	assert.Equal(t, "abort", Abort.String())
	assert.Equal(t, "choice(7)", Choice(7).String())
	assert.Equal(t, "awaiting-decision", AwaitingDecision.String())
	assert.Equal(t, "aborted", Aborted.String())
	assert.NotPanics(t, func() {
		assert.Equal(t, "state(9)", State(9).String())
		assert.Equal(t, "state(-1)", State(-1).String())
	})
}
