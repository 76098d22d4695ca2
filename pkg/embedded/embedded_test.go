package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// resetForTest 重置包状态，避免测试之间互相影响
func resetForTest(t *testing.T) {
	t.Helper()
	dataFS = nil
	initialized = false
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest(t)

	_, err := ReadFile("data/arena.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/arena.yaml": &fstest.MapFile{Data: []byte("player: {}")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/arena.yaml"},
		{name: "带 ./ 前缀", path: "./data/arena.yaml"},
		{name: "未知前缀", path: "assets/arena.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "player: {}" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}
}

func TestExists(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/arena.yaml": &fstest.MapFile{Data: []byte("x")},
	})

	if !Exists("data/arena.yaml") {
		t.Error("Expected data/arena.yaml to exist")
	}
	if Exists("data/other.yaml") {
		t.Error("Expected data/other.yaml to be missing")
	}
}
