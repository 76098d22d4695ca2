package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/decker502/arena/pkg/embedded"
	"github.com/joho/godotenv"
)

// 环境变量名
const (
	EnvConfigPath = "ARENA_CONFIG"
	EnvSeed       = "ARENA_SEED"
	EnvVerbose    = "ARENA_VERBOSE"
)

// EnvDefaults 从环境变量读取的命令行参数默认值
type EnvDefaults struct {
	ConfigPath string
	Seed       int64
	HasSeed    bool
	Verbose    bool
}

// LoadEnv 加载当前目录下可选的 .env 文件，然后读取 ARENA_* 变量
//
// .env 不存在不是错误；已存在的进程环境变量优先于 .env 中的值。
// 变量值无法解析时忽略该变量并记录日志。
func LoadEnv(files ...string) EnvDefaults {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] Warning: failed to load .env: %v", err)
	}
	return ReadEnvDefaults()
}

// ReadEnvDefaults 只读取进程环境变量，不加载 .env
func ReadEnvDefaults() EnvDefaults {
	defaults := EnvDefaults{
		ConfigPath: os.Getenv(EnvConfigPath),
	}

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("[Config] Warning: ignoring %s=%q: %v", EnvSeed, raw, err)
		} else {
			defaults.Seed = seed
			defaults.HasSeed = true
		}
	}

	if raw := os.Getenv(EnvVerbose); raw != "" {
		verbose, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("[Config] Warning: ignoring %s=%q: %v", EnvVerbose, raw, err)
		} else {
			defaults.Verbose = verbose
		}
	}

	return defaults
}

// ResolveArenaConfig 按优先级加载配置：外部文件 > 内置 data/arena.yaml > DefaultArenaConfig
// 没有初始化嵌入资源的程序（如终端版）直接使用默认值
func ResolveArenaConfig(externalPath string) (*ArenaConfig, error) {
	if externalPath != "" {
		cfg, err := LoadArenaConfigFile(externalPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] Loaded arena config from %s", externalPath)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not available, using built-in defaults")
		return DefaultArenaConfig(), nil
	}

	cfg, err := LoadArenaConfig(DefaultArenaConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded embedded arena config %s", DefaultArenaConfigPath)
	return cfg, nil
}
