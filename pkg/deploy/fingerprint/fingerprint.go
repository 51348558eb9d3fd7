package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
)

// Fingerprint returns a stable hash of a deployment spec.
// The spec MUST be normalized first. Map keys are ordered by the JSON
// encoder, so identical specs always hash identically.
func Fingerprint(spec *deploy.Spec) string {
	b, _ := json.Marshal(spec)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
