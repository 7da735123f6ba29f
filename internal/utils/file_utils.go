package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SafeFileName prefixes names with a uuid so repeated uploads of the
// same file never collide, and synthesizes a name for clipboard pastes
// that carry none.
func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("paste-%d.png", time.Now().UnixMilli())
	}
	return fmt.Sprintf("%s-%s", uuid.NewString(), name)
}
