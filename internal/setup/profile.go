package setup

import (
	"fmt"
	"strings"

	"github.com/conn-castle/devsetup/internal/messages"
)

// Profile selects which tools a setup run installs.
type Profile string

const (
	// ProfileBasic installs the basic tool list without prompting.
	ProfileBasic Profile = "basic"
	// ProfileFull walks every configured stage, optionally narrowing each one.
	ProfileFull Profile = "full"
	// ProfileCustomized installs a list typed in by the user and saves it.
	ProfileCustomized Profile = "customized"
)

// Profiles returns every profile in menu order.
func Profiles() []Profile {
	return []Profile{ProfileBasic, ProfileFull, ProfileCustomized}
}

// ParseProfile parses a profile name or menu label, ignoring case.
func ParseProfile(s string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfileBasic:
		return ProfileBasic, nil
	case ProfileFull:
		return ProfileFull, nil
	case ProfileCustomized:
		return ProfileCustomized, nil
	default:
		return "", fmt.Errorf(messages.SetupUnknownProfileFmt, s)
	}
}

// Label returns the menu label for p.
func (p Profile) Label() string {
	switch p {
	case ProfileBasic:
		return "Basic"
	case ProfileFull:
		return "Full"
	case ProfileCustomized:
		return "Customized"
	default:
		return string(p)
	}
}
