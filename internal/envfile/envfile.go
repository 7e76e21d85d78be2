// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package envfile loads environment overrides from dotenv files. Variables
// already present in the environment win over the file.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Load reads each file in order and sets the variables that are not yet
// set. Missing files are not errors. It returns the names it set, sorted.
func Load(paths ...string) ([]string, error) {
	var applied []string
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		for k, v := range vars {
			if _, ok := os.LookupEnv(k); ok {
				continue
			}
			if err := os.Setenv(k, v); err != nil {
				return nil, fmt.Errorf("setting %s: %w", k, err)
			}
			applied = append(applied, k)
		}
	}
	sort.Strings(applied)
	return applied, nil
}
