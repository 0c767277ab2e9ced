package model

import (
	"time"

	"github.com/google/uuid"
)

type IssueCategory string

const (
	CategoryInfrastructure IssueCategory = "infrastructure"
	CategoryWater          IssueCategory = "water"
	CategoryElectricity    IssueCategory = "electricity"
	CategoryRoad           IssueCategory = "road"
	CategorySanitation     IssueCategory = "sanitation"
	CategoryHealthcare     IssueCategory = "healthcare"
	CategoryEducation      IssueCategory = "education"
	CategoryAgriculture    IssueCategory = "agriculture"
	CategoryEnvironment    IssueCategory = "environment"
	CategoryOther          IssueCategory = "other"
)

func (c IssueCategory) Valid() bool {
	switch c {
	case CategoryInfrastructure, CategoryWater, CategoryElectricity, CategoryRoad,
		CategorySanitation, CategoryHealthcare, CategoryEducation, CategoryAgriculture,
		CategoryEnvironment, CategoryOther:
		return true
	}
	return false
}

type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in-progress"
	StatusResolved   IssueStatus = "resolved"
	StatusClosed     IssueStatus = "closed"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type IssuePriority string

const (
	PriorityLow      IssuePriority = "low"
	PriorityMedium   IssuePriority = "medium"
	PriorityHigh     IssuePriority = "high"
	PriorityCritical IssuePriority = "critical"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Issue 民眾回報的問題。ReportedBy 建立後不可變更
type Issue struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Description string        `db:"description" json:"description"`
	Category    IssueCategory `db:"category" json:"category"`
	Location    string        `db:"location" json:"location"`
	Status      IssueStatus   `db:"status" json:"status"`
	Priority    IssuePriority `db:"priority" json:"priority"`
	ReportedBy  uuid.UUID     `db:"reported_by" json:"reported_by"`
	AssignedTo  *uuid.UUID    `db:"assigned_to" json:"assigned_to"`
	ImageURL    *string       `db:"image_url" json:"image_url"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`

	ReporterName  string  `json:"reporter_name,omitempty"`
	ReporterEmail string  `json:"reporter_email,omitempty"`
	AssigneeName  *string `json:"assigned_to_name,omitempty"`
	AssigneeEmail *string `json:"assigned_to_email,omitempty"`
}

// IssueUpdate 內容修改允許的欄位；status、assigned_to、reported_by 不在此列
type IssueUpdate struct {
	Title         *string
	Description   *string
	Category      *IssueCategory
	Location      *string
	Priority      *IssuePriority
	ImageURL      *string
	ClearImageURL bool
}

func (u IssueUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Location == nil && u.Priority == nil && u.ImageURL == nil && !u.ClearImageURL
}

type IssueFilter struct {
	Status     *IssueStatus
	Category   *IssueCategory
	Priority   *IssuePriority
	ReportedBy *uuid.UUID
	Page       Page
}

type CategoryCount struct {
	Category IssueCategory `json:"category"`
	Count    int           `json:"count"`
}

type IssueStats struct {
	Total            int             `json:"total"`
	Pending          int             `json:"pending"`
	InProgress       int             `json:"in_progress"`
	Resolved         int             `json:"resolved"`
	Closed           int             `json:"closed"`
	HighPriority     int             `json:"high_priority"`
	CriticalPriority int             `json:"critical_priority"`
	ByCategory       []CategoryCount `json:"by_category"`
}

type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	IssueID   uuid.UUID `db:"issue_id" json:"issue_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}
