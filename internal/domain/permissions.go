package domain

const (
	AdPermissionDenied        = "Вы не имеете доступа к этому объявлению."
	SelectionPermissionDenied = "Вы не имеете прав на это действие с подборкой."
)

// IsAdAuthorOrStaff разрешает изменение объявления его автору, модераторам и админам.
func IsAdAuthorOrStaff(caller *User, ad *Ad) bool {
	if caller == nil || ad == nil {
		return false
	}
	if ad.AuthorID != nil && *ad.AuthorID == caller.ID {
		return true
	}
	return caller.IsStaff()
}

// IsSelectionOwner разрешает изменение подборки только её владельцу.
func IsSelectionOwner(caller *User, selection *Selection) bool {
	if caller == nil || selection == nil {
		return false
	}
	return selection.OwnerID == caller.ID
}
