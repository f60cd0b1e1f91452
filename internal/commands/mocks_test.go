package commands

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/okra-platform/crudkit/internal/config"
	"github.com/okra-platform/crudkit/internal/generate"
)

type mockConfigLoader struct {
	mock.Mock
}

func (m *mockConfigLoader) Load(dir string) (*config.Config, string, error) {
	args := m.Called(dir)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*config.Config), args.String(1), args.Error(2)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Run(ctx context.Context, req generate.Request) (*generate.Result, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*generate.Result)
	return result, args.Error(1)
}

func (m *mockGenerator) Plan(ctx context.Context, req generate.Request) (*generate.Result, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*generate.Result)
	return result, args.Error(1)
}

type mockOutput struct {
	mu       sync.Mutex
	messages []string
}

func (o *mockOutput) Printf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, fmt.Sprintf(format, args...))
}

func (o *mockOutput) Println(args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, fmt.Sprintln(args...))
}

func (o *mockOutput) all() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.messages...)
}

type mockSignalNotifier struct {
	mock.Mock
}

func (m *mockSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	m.Called(c, sig)
}

func (m *mockSignalNotifier) Stop(c chan<- os.Signal) {
	m.Called(c)
}

type mockFileSystem struct {
	files     map[string][]byte
	statCalls []string
	mkdirErr  error
	writeErr  error
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	m.statCalls = append(m.statCalls, name)
	if _, ok := m.files[name]; ok {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return m.mkdirErr
}

func (m *mockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = data
	return nil
}
