package promptutils

import (
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

type fakeSelect struct {
	selected string
	err      error
}

func (f *fakeSelect) Run() (int, string, error) { return 0, f.selected, f.err }

type fakeConfirm struct {
	answer string
	err    error
}

func (f *fakeConfirm) Run() (string, error) { return f.answer, f.err }

func newTestPrompter(sel *fakeSelect, conf *fakeConfirm) *RealPrompter {
	return &RealPrompter{
		newSelect:  func(string, []string) selectRunner { return sel },
		newConfirm: func(string) confirmRunner { return conf },
	}
}

func TestRealPrompter_SelectProfile(t *testing.T) {
	tests := []struct {
		name        string
		profiles    []string
		sel         *fakeSelect
		expected    string
		expectedErr error
		errContains string
	}{
		{name: "selects profile", profiles: []string{"dev", "prod"}, sel: &fakeSelect{selected: "prod"}, expected: "prod"},
		{name: "interrupted", profiles: []string{"dev"}, sel: &fakeSelect{err: promptui.ErrInterrupt}, expectedErr: ErrInterrupted},
		{name: "other failure", profiles: []string{"dev"}, sel: &fakeSelect{err: errors.New("tty gone")}, errContains: "prompt failed: tty gone"},
		{name: "no profiles", profiles: nil, sel: &fakeSelect{}, errContains: "no profiles to choose from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPrompter(tt.sel, nil)
			got, err := p.SelectProfile(tt.profiles)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.errContains != "":
				assert.ErrorContains(t, err, tt.errContains)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestRealPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		conf     *fakeConfirm
		expected bool
		wantErr  bool
	}{
		{name: "yes", conf: &fakeConfirm{answer: "y"}, expected: true},
		{name: "Yes uppercase", conf: &fakeConfirm{answer: "Yes"}, expected: true},
		{name: "abort means no", conf: &fakeConfirm{err: promptui.ErrAbort}, expected: false},
		{name: "interrupt", conf: &fakeConfirm{err: promptui.ErrInterrupt}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPrompter(nil, tt.conf)
			got, err := p.Confirm("Remove profile?")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInterrupted)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
