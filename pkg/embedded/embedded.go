// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// 数据文件的 embed.FS 变量声明在项目根目录（embed.go）。
// 音效资源体积较大，不参与嵌入，运行时通过 -assets 目录挂载（os.DirFS）。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 初始化资源文件系统
// assets 可以为 nil（无音效目录时游戏以静音模式运行）
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// HasAssets 返回是否挂载了资源目录
func HasAssets() bool {
	return initialized && assetsFS != nil
}

// resolve 标准化路径并按前缀选择文件系统
// 路径必须以 "assets/" 或 "data/" 开头
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		if assetsFS == nil {
			return nil, "", fmt.Errorf("no assets directory mounted for %s: %w", path, fs.ErrNotExist)
		}
		// 资源目录以 assets/ 为根挂载
		return assetsFS, strings.TrimPrefix(path, "assets/"), nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
