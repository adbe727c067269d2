// 指示: miu200521358
package messages

import "testing"

func TestLogMessagesAreDefined(t *testing.T) {
	keys := []string{
		LogArmatureMissing,
		LogBoneMissing,
		LogTargetSpawnFailed,
		LogRetargetCompleted,
		LogHipsToHeadMeasured,
		LogHipsToHeadMissing,
		LogLocalUserEntered,
		LogLocalUserExited,
		LogRemoteRejected,
		MessageInputRequired,
		MessageLoadFailed,
		MessageSaveFailed,
		MessageRetargetFailed,
	}

	seen := map[string]struct{}{}
	for _, key := range keys {
		if key == "" {
			t.Fatalf("key should not be empty")
		}
		if _, exists := seen[key]; exists {
			t.Fatalf("key should be unique: %s", key)
		}
		seen[key] = struct{}{}
	}
}
