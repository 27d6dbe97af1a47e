package config

import (
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// CheckVersionCompatibility makes sure that the running version satisfies the
// configured requiredVersion constraint. An empty constraint always passes.
func CheckVersionCompatibility(version string, constraint string) error {
	// The lack of a constraint means there's nothing to validate and isn't an error.
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Errorf("config: the 'requiredVersion' constraint %q is not valid", constraint)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "config: cannot check 'requiredVersion' against version %q", version)
	}
	if !c.Check(v) {
		return errors.Errorf("config: version '%v' of segpath does not meet the '%v' constraint", v, constraint)
	}
	return nil
}
