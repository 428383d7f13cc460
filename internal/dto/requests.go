package dto

import "github.com/GoArmGo/AdBoard/internal/domain"

type CategoryCreateRequest struct {
	Name     string `json:"name" validate:"required,max=20"`
	IsActive *bool  `json:"is_active"`
}

func (r CategoryCreateRequest) ToDomain() *domain.Category {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &domain.Category{Name: r.Name, IsActive: isActive}
}

// CategoryUpdateRequest при обновлении категории оба поля обязательны
type CategoryUpdateRequest struct {
	Name     *string `json:"name" validate:"required,min=1,max=20"`
	IsActive *bool   `json:"is_active" validate:"required"`
}

func (r CategoryUpdateRequest) ToDomain(id int64) *domain.Category {
	return &domain.Category{ID: id, Name: *r.Name, IsActive: *r.IsActive}
}

// LocationRequest используется и для PUT, и для PATCH:
// при PATCH тело накладывается на текущие значения
type LocationRequest struct {
	Name string   `json:"name" validate:"required,max=200"`
	Lat  *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng  *float64 `json:"lng" validate:"omitempty,longitude"`
}

func LocationRequestFrom(l *domain.Location) LocationRequest {
	return LocationRequest{Name: l.Name, Lat: l.Lat, Lng: l.Lng}
}

func (r LocationRequest) ToDomain(id int64) *domain.Location {
	return &domain.Location{ID: id, Name: r.Name, Lat: r.Lat, Lng: r.Lng}
}

type UserCreateRequest struct {
	Username      string   `json:"username" validate:"required,max=30,username"`
	Password      string   `json:"password" validate:"required"`
	FirstName     *string  `json:"first_name" validate:"omitempty,max=20"`
	LastName      *string  `json:"last_name" validate:"omitempty,max=20"`
	Role          string   `json:"role" validate:"omitempty,oneof=member moderator admin"`
	Age           *int     `json:"age" validate:"omitempty,gte=0,lte=32767"`
	LocationNames []string `json:"location_names" validate:"omitempty,dive,required,max=200"`
}

func (r UserCreateRequest) ToDomain() *domain.User {
	return &domain.User{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
		Age:       r.Age,
	}
}

// UserUpdateRequest все поля необязательны, адреса добавляются к существующим
type UserUpdateRequest struct {
	Username      *string  `json:"username" validate:"omitnil,min=1,max=30,username"`
	Password      *string  `json:"password" validate:"omitempty,min=1"`
	FirstName     *string  `json:"first_name" validate:"omitempty,max=20"`
	LastName      *string  `json:"last_name" validate:"omitempty,max=20"`
	Role          *string  `json:"role" validate:"omitempty,oneof=member moderator admin"`
	Age           *int     `json:"age" validate:"omitempty,gte=0,lte=32767"`
	LocationNames []string `json:"location_names" validate:"omitempty,dive,required,max=200"`
}

func (r UserUpdateRequest) ToChanges() domain.UserChanges {
	return domain.UserChanges{
		Username:      r.Username,
		Password:      r.Password,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Role:          r.Role,
		Age:           r.Age,
		LocationNames: r.LocationNames,
	}
}

// AdRequest полное тело объявления: создание и PUT
type AdRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Price       *int64  `json:"price" validate:"required,gte=0,lte=2147483647"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsPublished *bool   `json:"is_published"`
	Author      *int64  `json:"author"`
	Category    *int64  `json:"category" validate:"required"`
}

func (r AdRequest) ToDomain() *domain.Ad {
	ad := &domain.Ad{
		Name:        r.Name,
		Price:       *r.Price,
		Description: r.Description,
		AuthorID:    r.Author,
		CategoryID:  *r.Category,
	}
	if r.IsPublished != nil {
		ad.IsPublished = *r.IsPublished
	}
	return ad
}

func (r AdRequest) ToChanges() domain.AdChanges {
	return domain.AdChanges{
		Name:        &r.Name,
		Price:       r.Price,
		Description: r.Description,
		IsPublished: r.IsPublished,
		AuthorID:    r.Author,
		CategoryID:  r.Category,
	}
}

// AdPatchRequest частичное обновление объявления
type AdPatchRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=200"`
	Price       *int64  `json:"price" validate:"omitnil,gte=0,lte=2147483647"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsPublished *bool   `json:"is_published"`
	Author      *int64  `json:"author"`
	Category    *int64  `json:"category"`
}

func (r AdPatchRequest) ToChanges() domain.AdChanges {
	return domain.AdChanges{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		IsPublished: r.IsPublished,
		AuthorID:    r.Author,
		CategoryID:  r.Category,
	}
}

// SelectionRequest создание и PUT подборки; без items набор объявлений не меняется
type SelectionRequest struct {
	Name  string   `json:"name" validate:"required,max=200"`
	Items *[]int64 `json:"items"`
}

func (r SelectionRequest) ToChanges() domain.SelectionChanges {
	return domain.SelectionChanges{Name: &r.Name, Items: r.Items}
}

type SelectionPatchRequest struct {
	Name  *string  `json:"name" validate:"omitnil,min=1,max=200"`
	Items *[]int64 `json:"items"`
}

func (r SelectionPatchRequest) ToChanges() domain.SelectionChanges {
	return domain.SelectionChanges{Name: r.Name, Items: r.Items}
}

type TokenObtainRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}
