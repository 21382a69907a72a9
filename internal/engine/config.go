package engine

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Colors - четыре цвета матрицы {видимость}x{непрозрачность}.
// Значения по умолчанию повторяют классическую факельную палитру.
type Colors struct {
	DarkWall    string `yaml:"darkWall"`
	DarkGround  string `yaml:"darkGround"`
	LightWall   string `yaml:"lightWall"`
	LightGround string `yaml:"lightGround"`
}

// Delta - смещение одного шага.
type Delta struct {
	Dx int `yaml:"dx"`
	Dy int `yaml:"dy"`
	Dz int `yaml:"dz"`
}

// Config хранит параметры запуска симуляции.
// Все константы, от которых зависит ядро, собраны здесь, а не зашиты
// по коду: радиус обзора, политика подсветки стен, палитра, шаги.
type Config struct {
	// TorchRadius - радиус видимости в клетках.
	TorchRadius int `yaml:"torchRadius"`

	// LightWalls - подсвечивать ли непрозрачные клетки на границе FOV.
	LightWalls bool `yaml:"lightWalls"`

	Colors Colors `yaml:"colors"`

	// Moves - кардинальные шаги, на которые фронтенды мапят клавиши.
	Moves map[string]Delta `yaml:"moves"`

	// BlueprintPath - путь к YAML-чертежу карты. Пусто - встроенный чертеж.
	BlueprintPath string `yaml:"blueprint"`
}

// NewConfig создает конфиг по умолчанию.
func NewConfig() Config {
	return Config{
		TorchRadius: 10,
		LightWalls:  true,
		Colors: Colors{
			DarkWall:    "#640000",
			DarkGround:  "#323296",
			LightWall:   "#826e32",
			LightGround: "#c8b432",
		},
		Moves: map[string]Delta{
			"north": {Dy: -1},
			"south": {Dy: 1},
			"west":  {Dx: -1},
			"east":  {Dx: 1},
		},
	}
}

// LoadConfig читает YAML-конфиг поверх значений по умолчанию,
// затем применяет переменные окружения (они старше файла).
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.TorchRadius <= 0 {
		return cfg, fmt.Errorf("torchRadius must be positive, got %d", cfg.TorchRadius)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("GW_TORCH_RADIUS"); ok {
		if r, err := strconv.Atoi(v); err == nil {
			c.TorchRadius = r
		}
	}
	if v, ok := os.LookupEnv("GW_LIGHT_WALLS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LightWalls = b
		}
	}
	if v, ok := os.LookupEnv("GW_BLUEPRINT"); ok {
		c.BlueprintPath = v
	}
}
