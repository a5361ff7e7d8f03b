package response

import (
	"shelter-scheduler/internal/domain/user"
	"shelter-scheduler/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      int    `json:"role"`
	RoleName  string `json:"role_name"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
	Role        int    `json:"role"`
}

func FromCurrentUser(view *queries.AuthorizedUserView) (*UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, view); err != nil {
		return nil, err
	}
	res.RoleName = user.Role(view.Role).String()
	return &res, nil
}
