package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/youshallpass/internal/auth"
	"github.com/iudanet/youshallpass/internal/crypto"
	"github.com/iudanet/youshallpass/internal/generator"
	"github.com/iudanet/youshallpass/internal/iocli"
	"github.com/iudanet/youshallpass/internal/storage/file"
	"github.com/iudanet/youshallpass/internal/validation"
	"github.com/iudanet/youshallpass/internal/vault"
)

const testSecret = "Str0ng!Pw"

// terminal собирает вывод и отдает заранее заданный ввод через IOMock
type terminal struct {
	*iocli.IOMock
	out    strings.Builder
	inputs []string
	mu     sync.Mutex
}

func newTerminal(inputs ...string) *terminal {
	term := &terminal{inputs: inputs}

	next := func(prompt string) (string, error) {
		term.mu.Lock()
		defer term.mu.Unlock()
		term.out.WriteString(prompt)
		if len(term.inputs) == 0 {
			return "", io.EOF
		}
		line := term.inputs[0]
		term.inputs = term.inputs[1:]
		return line, nil
	}

	term.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			term.mu.Lock()
			defer term.mu.Unlock()
			term.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			term.mu.Lock()
			defer term.mu.Unlock()
			term.out.WriteString(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			term.mu.Lock()
			defer term.mu.Unlock()
			return term.out.Write(p)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}

	return term
}

func (t *terminal) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.String()
}

// feed добавляет строки ввода
func (t *terminal) feed(lines ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inputs = append(t.inputs, lines...)
}

type fakeClipboard struct {
	err  error
	text string
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestNew_Defaults(t *testing.T) {
	c := New(newTerminal(), nil, vault.New(), nil, nil, 0)

	assert.Equal(t, Clipboard(SystemClipboard{}), c.clipboard)
	assert.Equal(t, generator.DefaultLength, c.genLength)
	assert.Empty(t, c.owner)
}

// newTestCli создает Cli поверх файлового хранилища в памяти
func newTestCli(t *testing.T, term *terminal) (*Cli, *fakeClipboard) {
	t.Helper()

	store := file.New(file.NewProvider(afero.NewMemMapFs()))
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authService := auth.NewService(store, crypto.SHA256Hasher{}, logger)
	clip := &fakeClipboard{}

	return New(term, authService, vault.New(), generator.New(nil, 0), clip, 0), clip
}

// loggedInCli регистрирует и авторизует alice
func loggedInCli(t *testing.T) (*Cli, *terminal, *fakeClipboard) {
	t.Helper()

	term := newTerminal()
	c, clip := newTestCli(t, term)

	ctx := context.Background()
	require.True(t, c.auth.CreateProfile(ctx, "alice", testSecret))
	c.auth.Login(ctx, "alice", testSecret)
	require.True(t, c.auth.IsAuthenticated())

	return c, term, clip
}

func TestCli_runRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		wantErr   string
		wantOut   string
		inputs    []string
		preCreate bool
	}{
		{
			name:    "success",
			inputs:  []string{"alice", testSecret, testSecret},
			wantOut: "Registration successful",
		},
		{
			name:    "passwords do not match",
			inputs:  []string{"alice", testSecret, "Other1!pw"},
			wantErr: "Passwords do not match",
		},
		{
			name:    "weak password",
			inputs:  []string{"alice", "weak", "weak"},
			wantErr: auth.MsgPolicyViolation,
		},
		{
			name:      "duplicate",
			inputs:    []string{"alice", testSecret, testSecret},
			wantErr:   auth.MsgDuplicateAccount,
			preCreate: true,
		},
		{
			name:    "input closed",
			inputs:  []string{"alice"},
			wantErr: "failed to read password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := newTerminal(tt.inputs...)
			c, _ := newTestCli(t, term)
			if tt.preCreate {
				require.True(t, c.auth.CreateProfile(ctx, "alice", testSecret))
			}

			err := c.runRegister(ctx)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				_, pending := c.auth.LastError()
				assert.False(t, pending, "error must be consumed")
				return
			}

			require.NoError(t, err)
			assert.Contains(t, term.Output(), tt.wantOut)
			assert.NotContains(t, term.Output(), testSecret)
		})
	}
}

func TestCli_runLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("no profile", func(t *testing.T) {
		term := newTerminal("bob", "anything")
		c, _ := newTestCli(t, term)

		err := c.runLogin(ctx)
		require.Error(t, err)
		assert.Equal(t, auth.MsgProfileNotFound, err.Error())
		assert.False(t, c.auth.IsAuthenticated())
	})

	t.Run("wrong password", func(t *testing.T) {
		term := newTerminal("alice", "WrongPw1!")
		c, _ := newTestCli(t, term)
		require.True(t, c.auth.CreateProfile(ctx, "alice", testSecret))

		err := c.runLogin(ctx)
		require.Error(t, err)
		assert.Equal(t, auth.MsgInvalidCredentials, err.Error())
	})

	t.Run("success", func(t *testing.T) {
		term := newTerminal("alice", testSecret)
		c, _ := newTestCli(t, term)
		require.True(t, c.auth.CreateProfile(ctx, "alice", testSecret))

		require.NoError(t, c.runLogin(ctx))
		assert.True(t, c.auth.IsAuthenticated())
		assert.Contains(t, term.Output(), "Login successful")
	})
}

func TestCli_runGenerate(t *testing.T) {
	term := newTerminal()
	c, _ := newTestCli(t, term)

	require.NoError(t, c.runGenerate(20))
	password := strings.TrimSpace(term.Output())
	assert.Len(t, password, 20)

	err := c.runGenerate(4)
	assert.ErrorIs(t, err, generator.ErrGenerationExhausted)
}

func TestCli_runGenerate_DefaultLength(t *testing.T) {
	term := newTerminal()
	c, _ := newTestCli(t, term)

	require.NoError(t, c.runGenerate(0))
	assert.Len(t, strings.TrimSpace(term.Output()), generator.DefaultLength)
}

func TestCli_runCheckPassword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		term := newTerminal(testSecret)
		c, _ := newTestCli(t, term)

		require.NoError(t, c.runCheckPassword())
		assert.Contains(t, term.Output(), "meets the policy")
	})

	t.Run("invalid lists every rule", func(t *testing.T) {
		term := newTerminal("abc")
		c, _ := newTestCli(t, term)

		err := c.runCheckPassword()
		require.Error(t, err)

		out := term.Output()
		assert.Contains(t, out, "at least 8 characters")
		assert.Contains(t, out, "capital letter")
		assert.Contains(t, out, "number")
		assert.Contains(t, out, "special character")
		for _, rule := range validation.FailedRules("abc") {
			assert.Contains(t, out, "  - "+rule+"\n")
		}
	})
}

func TestCli_VaultCommands(t *testing.T) {
	c, term, clip := loggedInCli(t)

	term.feed("github.com", "octocat", "Gh!token1")
	require.NoError(t, c.runAdd())
	term.feed("example.org", "me", "")
	require.NoError(t, c.runAdd())
	assert.Contains(t, term.Output(), "Generated password:")

	require.NoError(t, c.runList(""))
	out := term.Output()
	assert.Contains(t, out, "Found 2 credential(s)")
	assert.Contains(t, out, "1. github.com")
	assert.Contains(t, out, "2. example.org")
	assert.NotContains(t, out, "Gh!token1", "list must mask passwords")

	require.NoError(t, c.runList("EXAMPLE"))
	assert.Contains(t, term.Output(), "Found 1 credential(s)")

	require.NoError(t, c.runShow("1"))
	assert.Contains(t, term.Output(), "Password: Gh!token1")

	require.NoError(t, c.runCopy("1"))
	assert.Equal(t, "Gh!token1", clip.text)

	require.NoError(t, c.runDelete("1"))
	records := c.vault.List()
	require.Len(t, records, 1)
	assert.Equal(t, "example.org", records[0].Site)

	// Ссылка по ID
	require.NoError(t, c.runShow(records[0].ID))

	assert.ErrorIs(t, c.runShow("5"), vault.ErrRecordNotFound)
	assert.ErrorIs(t, c.runShow(""), errMissingArgument)
}

func TestCli_runAdd_MissingFields(t *testing.T) {
	c, term, _ := loggedInCli(t)

	term.feed("", "octocat", "pw")
	assert.ErrorIs(t, c.runAdd(), vault.ErrEmptyField)
	assert.Equal(t, 0, c.vault.Len())
}

func TestCli_runCopy_ClipboardFailure(t *testing.T) {
	c, term, clip := loggedInCli(t)
	clip.err = errors.New("no display")

	term.feed("github.com", "octocat", "Gh!token1")
	require.NoError(t, c.runAdd())

	err := c.runCopy("1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}

func TestCli_VaultCommandsRequireLogin(t *testing.T) {
	term := newTerminal("github.com", "octocat", "pw")
	c, _ := newTestCli(t, term)

	assert.ErrorIs(t, c.runAdd(), errNotLoggedIn)
	assert.ErrorIs(t, c.runList(""), errNotLoggedIn)
	assert.ErrorIs(t, c.runShow("1"), errNotLoggedIn)
	assert.ErrorIs(t, c.runCopy("1"), errNotLoggedIn)
	assert.ErrorIs(t, c.runDelete("1"), errNotLoggedIn)

	// Ввод не был прочитан
	assert.Empty(t, term.ReadInputCalls())
}
