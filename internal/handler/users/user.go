package users

import (
	"errors"
	"net/http"
	"strconv"

	"health-tracker/internal/api"
	"health-tracker/internal/database"
	"health-tracker/internal/model"
	"health-tracker/internal/service"
	"health-tracker/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	comparePassword    = service.ComparePassword
	createUser         = store.CreateUser
	listUsers          = store.ListUsers
	getUserByID        = store.GetUserByID
	updateUserName     = store.UpdateUserName
	updateUserPassword = store.UpdateUserPassword
	deleteUser         = store.DeleteUser
)

func toUserResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// @Summary     Create a new user
// @Description 依序檢查密碼政策與 email 格式後建立帳號
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		// 驗證順序沿用既有行為：先密碼政策，再 email 格式
		if !service.ValidatePassword(req.Password) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid password. Please follow the password policy."})
		}
		if !service.ValidateEmail(req.Email) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid email. Please give valid email."})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("create user: hash password: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create user"})
		}

		// email 重複由資料庫唯一索引擋下，以 500 呈現
		if _, err := createUser(c.Request().Context(), db, &model.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: hash,
		}); err != nil {
			c.Logger().Errorf("create user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
	}
}

// @Summary     List all users
// @Description 回傳所有使用者（不含密碼哈希）
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("list users: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list users"})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, toUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			}
			c.Logger().Errorf("get user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get user"})
		}
		return c.JSON(http.StatusOK, toUserResponse(user))
	}
}

// @Summary     Update a user by ID
// @Description 僅更新姓名，email 與密碼不在此操作範圍
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Param       body body api.UpdateUserRequest true "更新資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		}
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		if err := updateUserName(c.Request().Context(), db, id, req.FirstName, req.LastName); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			}
			c.Logger().Errorf("update user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update user"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User updated successfully"})
	}
}

// @Summary     Delete a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			}
			c.Logger().Errorf("delete user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete user"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted successfully"})
	}
}
