package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"formfill-cli/internal/settings"
)

func main() {
	fmt.Println("Testing Formfill CLI Settings System")
	fmt.Println("====================================")

	// Create a test settings file
	homeDir, _ := os.UserHomeDir()
	settingsDir := filepath.Join(homeDir, ".config", "formfill")
	os.MkdirAll(settingsDir, 0755)

	settingsPath := filepath.Join(settingsDir, "test-config.toml")
	testSettings := `
default_config = "~/forms/party.txt"
timeout_seconds = 45
confirm_submit = true
show_values = false
user_agent = "formfill-smoke"
`

	err := os.WriteFile(settingsPath, []byte(testSettings), 0644)
	if err != nil {
		log.Fatalf("Failed to create test settings: %v", err)
	}
	defer os.Remove(settingsPath)

	// Test 1: Load settings from file
	fmt.Println("\n1. Testing settings file loading:")
	manager := settings.NewManager()
	cfg, err := manager.Load(settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	fmt.Printf("   Default Config: %s\n", cfg.DefaultConfig)
	fmt.Printf("   Timeout: %d seconds\n", cfg.TimeoutSeconds)
	fmt.Printf("   Confirm Submit: %v\n", cfg.ConfirmSubmit)
	fmt.Printf("   User Agent: %s\n", cfg.UserAgent)

	// Test 2: Environment variable precedence
	fmt.Println("\n2. Testing environment variable precedence:")
	os.Setenv("FORMFILL_USER_AGENT", "env-agent")
	os.Setenv("FORMFILL_TIMEOUT_SECONDS", "90")
	defer func() {
		os.Unsetenv("FORMFILL_USER_AGENT")
		os.Unsetenv("FORMFILL_TIMEOUT_SECONDS")
	}()

	manager2 := settings.NewManager()
	cfg2, err := manager2.Load(settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	fmt.Printf("   User Agent (env override): %s\n", cfg2.UserAgent)
	fmt.Printf("   Timeout (env override): %d seconds\n", cfg2.TimeoutSeconds)
	fmt.Printf("   Default Config (from file): %s\n", cfg2.DefaultConfig)

	// Test 3: Flag precedence
	fmt.Println("\n3. Testing flag precedence:")
	manager3 := settings.NewManager()
	manager3.Load(settingsPath)
	manager3.SetFlag("timeout_seconds", 120)
	manager3.SetFlag("user_agent", "flag-agent")

	cfg3, err := manager3.Resolve()
	if err != nil {
		log.Fatalf("Failed to resolve settings: %v", err)
	}

	fmt.Printf("   Timeout (flag override): %d seconds\n", cfg3.TimeoutSeconds)
	fmt.Printf("   User Agent (flag override): %s\n", cfg3.UserAgent)
	fmt.Printf("   Default Config (from file): %s\n", cfg3.DefaultConfig)

	// Test 4: Validation
	fmt.Println("\n4. Testing validation:")
	err = manager3.Validate(cfg3)
	if err != nil {
		fmt.Printf("   Validation failed: %v\n", err)
	} else {
		fmt.Printf("   ✓ Settings are valid\n")
	}

	// Test 5: Invalid settings
	fmt.Println("\n5. Testing invalid settings:")
	invalidCfg := *cfg3
	invalidCfg.TimeoutSeconds = -1
	invalidCfg.DefaultConfig = ""

	err = manager3.Validate(&invalidCfg)
	if err != nil {
		fmt.Printf("   ✓ Validation correctly caught errors: %v\n", err)
	} else {
		fmt.Printf("   ✗ Validation should have failed\n")
	}

	fmt.Println("\n✓ Settings system test completed successfully!")
}
