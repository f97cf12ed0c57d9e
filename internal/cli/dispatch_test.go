package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"todo/internal/backend"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
	"todo/internal/testutil"
)

// runDispatch runs the default registry against a fake backend, with the
// config dir pinned to a temp dir so no real config.toml is picked up.
func runDispatch(t *testing.T, fake *testutil.FakeBackend, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	factory := func(ctx context.Context, cfg *config.Config) (backend.Backend, error) {
		return fake, nil
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	full := append([]string{args[0], "--config", t.TempDir()}, args[1:]...)
	code = d.Run(context.Background(), full, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestRun_NoArgsPrintsHelp(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(outBuf.String(), "Usage:") {
		t.Error("expected usage output")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"frobnicate"}, &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(errBuf.String(), "unknown command: frobnicate") {
		t.Errorf("expected unknown command error, got %q", errBuf.String())
	}
}

func TestRun_FlagBeforeCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"--quiet", "lists"}, &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(errBuf.String(), "unknown command") {
		t.Errorf("expected unknown command error, got %q", errBuf.String())
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	fake := testutil.NewFakeBackend()

	_, stderr, code := runDispatch(t, fake, "lists", "--bogus")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "unknown flag: -bogus") {
		t.Errorf("expected unknown flag error, got %q", stderr)
	}
}

func TestRun_MutationIsSaved(t *testing.T) {
	fake := testutil.NewFakeBackend()
	fake.Store = testutil.Seed(testutil.ListOf("work", nil))

	_, stderr, code := runDispatch(t, fake, "add", "work", "email")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if fake.SaveCalls != 1 {
		t.Fatalf("expected exactly one save, got %d", fake.SaveCalls)
	}
	if len(fake.Saved) != 1 || len(fake.Saved[0].Items) != 1 || fake.Saved[0].Items[0].Name != "email" {
		t.Errorf("saved document missing the new item: %+v", fake.Saved)
	}
}

func TestRun_ReadOnlyCommandDoesNotSave(t *testing.T) {
	fake := testutil.NewFakeBackend()
	fake.Store = testutil.Seed(testutil.ListOf("work", nil))

	_, _, code := runDispatch(t, fake, "lists")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if fake.SaveCalls != 0 {
		t.Errorf("expected no save for a read-only command, got %d", fake.SaveCalls)
	}
}

func TestRun_FailedMutationDoesNotSave(t *testing.T) {
	fake := testutil.NewFakeBackend()
	fake.Store = testutil.Seed(testutil.ListOf("work", nil))

	_, _, code := runDispatch(t, fake, "add", "ghost", "email")

	if code != exitcode.UserError {
		t.Fatalf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if fake.SaveCalls != 0 {
		t.Errorf("expected no save after a failed command, got %d", fake.SaveCalls)
	}
}

func TestRun_SaveFailure(t *testing.T) {
	fake := testutil.NewFakeBackend()
	fake.Store = testutil.Seed(testutil.ListOf("work", nil))
	fake.SaveErr = errors.New("disk full")

	_, stderr, code := runDispatch(t, fake, "add", "work", "email")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.Contains(stderr, "save failed") {
		t.Errorf("expected save failure message, got %q", stderr)
	}
}

func TestRun_CorruptLoad(t *testing.T) {
	fake := testutil.NewFakeBackend()
	fake.LoadErr = fmt.Errorf("todo.txt: %w: line 3", store.ErrCorrupt)

	_, stderr, code := runDispatch(t, fake, "lists")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.Contains(stderr, "corrupt state") {
		t.Errorf("expected corrupt state message, got %q", stderr)
	}
}

func TestRun_VersionNeedsNoBackend(t *testing.T) {
	// The factory must not be called for commands that don't touch the
	// document.
	factory := func(ctx context.Context, cfg *config.Config) (backend.Backend, error) {
		t.Error("factory called for version command")
		return nil, nil
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"version", "--config", t.TempDir()}, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
}
