package flagx

import (
	"os"
	"reflect"
	"testing"
)

func TestFilterArgs_SeparateValues(t *testing.T) {
	args := []string{"-d", "dsn", "-x", "noise", "-s", "secret"}
	got := FilterArgs(args, []string{"-d", "-s"})
	want := []string{"-d", "dsn", "-s", "secret"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-d=dsn", "-x=skip"}
	got := FilterArgs(args, []string{"--config", "-d"})
	want := []string{"--config=conf.json", "-d=dsn"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	args := []string{"-d", "-s", "secret"}
	got := FilterArgs(args, []string{"-d", "-s"})
	want := []string{"-d", "-s", "secret"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-d"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestJSONConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"scheduler", "-c", "conf.json", "-d", "dsn"}
	if got := JSONConfigFlags(); got != "conf.json" {
		t.Fatalf("got %q, want conf.json", got)
	}

	os.Args = []string{"scheduler", "-d", "dsn"}
	if got := JSONConfigFlags(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
