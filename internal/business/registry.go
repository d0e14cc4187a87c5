package business

// Resolved binds a role to its dataset and the display name used in
// prompts and fallback answers.
type Resolved struct {
	Role        Role
	Dataset     *Dataset
	DisplayName string
}

const (
	cafeDisplayName    = "카페 김비서랩 사장님"
	startupDisplayName = "서울체인랩스 대표님"
)

// Resolve maps a role hint to a dataset. It is total on purpose:
// anything other than "it-founder" (empty and unknown values included)
// falls back to the cafe owner, so a malformed hint can never fail a
// request.
func Resolve(roleHint string) Resolved {
	if roleHint == string(RoleITFounder) {
		return Resolved{
			Role:        RoleITFounder,
			Dataset:     &startupDataset,
			DisplayName: startupDisplayName,
		}
	}

	return Resolved{
		Role:        RoleCafeOwner,
		Dataset:     &cafeDataset,
		DisplayName: cafeDisplayName,
	}
}
