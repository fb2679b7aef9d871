// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".bstree.yaml"

type TreeConfig struct {
	ItemKind string `yaml:"item_kind"` // int, float or string
}

type DisplayConfig struct {
	ShowDiagram  bool `yaml:"show_diagram"`
	ShowProgress bool `yaml:"show_progress"`
}

type LoaderConfig struct {
	ProgressThreshold int  `yaml:"progress_threshold"`
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
	WarnDuplicates    bool `yaml:"warn_duplicates"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Display DisplayConfig `yaml:"display"`
	Loader  LoaderConfig  `yaml:"loader"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		ItemKind: KindInt,
	},
	Display: DisplayConfig{
		ShowDiagram:  false,
		ShowProgress: true,
	},
	Loader: LoaderConfig{
		ProgressThreshold: 1000,
		BloomFilterSize:   100000,
		BloomFilterHashes: 5,
		WarnDuplicates:    true,
	},
}

// LoadConfig reads ~/.bstree.yaml. It never fails hard: a missing or broken
// file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath), nil
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func loadConfigFrom(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		return defaults()
	}

	// Start from the defaults so that keys missing from the file keep them.
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		return defaults()
	}

	if _, ok := itemKinds[config.Tree.ItemKind]; !ok {
		log.Printf("Unknown item_kind %q in %s. Falling back to %q.", config.Tree.ItemKind, configPath, KindInt)
		config.Tree.ItemKind = KindInt
	}
	if config.Loader.BloomFilterSize == 0 || config.Loader.BloomFilterHashes == 0 {
		config.Loader.BloomFilterSize = defaultConfig.Loader.BloomFilterSize
		config.Loader.BloomFilterHashes = defaultConfig.Loader.BloomFilterHashes
	}

	return config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config := loadConfigFrom(configPath)

	fmt.Printf("🔧 bstree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %sitem_kind%s: %s\n\n", Green, Reset, config.Tree.ItemKind)

	fmt.Printf("🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_diagram%s: %t\n", Green, Reset, config.Display.ShowDiagram)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Display.ShowProgress)

	fmt.Printf("📥 %sLoader:%s\n", Green, Reset)
	fmt.Printf("  • %sprogress_threshold%s: %d\n", Green, Reset, config.Loader.ProgressThreshold)
	fmt.Printf("  • %sbloom_filter_size%s: %d\n", Green, Reset, config.Loader.BloomFilterSize)
	fmt.Printf("  • %sbloom_filter_hashes%s: %d\n", Green, Reset, config.Loader.BloomFilterHashes)
	fmt.Printf("  • %swarn_duplicates%s: %t\n\n", Green, Reset, config.Loader.WarnDuplicates)

	fmt.Printf("💡 %sEdit %s to change these defaults.%s Flags such as --kind override them per run.\n", Warning, configPath, Reset)
}
