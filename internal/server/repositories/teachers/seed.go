package teachers

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

// seedFile mirrors the credentials file layout:
//
//	{"teachers": {"username": "password", ...}}
type seedFile struct {
	Teachers map[string]string `json:"teachers"`
}

// LoadSeedFile reads teacher credentials from path and returns them with
// bcrypt-hashed passwords. A missing file is not an error: it yields an
// empty set, leaving login disabled until accounts are provisioned.
func LoadSeedFile(path string) ([]models.Teacher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	var result []models.Teacher
	for username, password := range f.Teachers {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", username, err)
		}
		result = append(result, models.Teacher{Username: username, PasswordHash: hash})
	}
	return result, nil
}
