package domain

import "time"

// NetworkContact represents one outreach attempt to a person or company.
type NetworkContact struct {
	ID            string     `gorm:"type:text;primaryKey" json:"id"`
	DateContacted time.Time  `gorm:"index:idx_contacts_date" json:"date_contacted"`
	ContactName   string     `gorm:"type:text;not null" json:"contact_name"`
	Company       string     `gorm:"type:text" json:"company,omitempty"`
	Method        string     `gorm:"type:text" json:"method"`
	Purpose       string     `gorm:"type:text" json:"purpose,omitempty"`
	Responded     bool       `gorm:"default:false" json:"responded"`
	FollowUpDate  *time.Time `json:"follow_up_date,omitempty"`
	Outcome       string     `gorm:"type:text" json:"outcome,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ContactFilters narrows contact list queries. Responded is a tri-state:
// nil means no filter.
type ContactFilters struct {
	Outcome   string
	Responded *bool
}

// RevenueWeek represents one week of business income, split by stream.
// WeeklyTotal is computed server-side from the revenue fields and never
// trusted from the client.
type RevenueWeek struct {
	ID                  string    `gorm:"type:text;primaryKey" json:"id"`
	WeekOf              time.Time `gorm:"uniqueIndex:idx_revenue_week" json:"week_of"`
	ProductWorkHours    float64   `gorm:"default:0" json:"product_work_hours"`
	ProductRevenue      float64   `gorm:"default:0" json:"product_revenue"`
	ClientWorkHours     float64   `gorm:"default:0" json:"client_work_hours"`
	ClientRevenue       float64   `gorm:"default:0" json:"client_revenue"`
	TemplateSalesCount  int       `gorm:"default:0" json:"template_sales_count"`
	TemplateSalesAmount float64   `gorm:"default:0" json:"template_sales_amount"`
	OtherIncome         float64   `gorm:"default:0" json:"other_income"`
	WeeklyTotal         float64   `gorm:"default:0" json:"weekly_total"`
	Notes               string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ComputeTotal sums the income streams into WeeklyTotal.
func (w *RevenueWeek) ComputeTotal() {
	w.WeeklyTotal = w.ProductRevenue + w.ClientRevenue + w.TemplateSalesAmount + w.OtherIncome
}

// ContentPost represents one scheduled content-calendar entry and its
// engagement numbers once published.
type ContentPost struct {
	ID                 string    `gorm:"type:text;primaryKey" json:"id"`
	WeekOf             time.Time `gorm:"index:idx_content_week" json:"week_of"`
	ScheduledDate      time.Time `gorm:"index:idx_content_scheduled" json:"scheduled_date"`
	DayOfWeek          string    `gorm:"type:text" json:"day_of_week"`
	Topic              string    `gorm:"type:text;not null" json:"topic"`
	Done               bool      `gorm:"default:false" json:"done"`
	EngagementLikes    int       `gorm:"default:0" json:"engagement_likes"`
	EngagementComments int       `gorm:"default:0" json:"engagement_comments"`
	EngagementShares   int       `gorm:"default:0" json:"engagement_shares"`
	LeadsGenerated     int       `gorm:"default:0" json:"leads_generated"`
	Notes              string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ContentFilters narrows content list queries.
type ContentFilters struct {
	WeekOf *time.Time
	Done   *bool
}

// WeeklyReview represents the end-of-week retrospective numbers and notes.
type WeeklyReview struct {
	ID              string    `gorm:"type:text;primaryKey" json:"id"`
	WeekOf          time.Time `gorm:"uniqueIndex:idx_reviews_week" json:"week_of"`
	JobApplications int       `gorm:"default:0" json:"job_applications"`
	DeepWorkHours   float64   `gorm:"default:0" json:"deep_work_hours"`
	RevenueThisWeek float64   `gorm:"default:0" json:"revenue_this_week"`
	ContentPosted   int       `gorm:"default:0" json:"content_posted"`
	NetworkOutreach int       `gorm:"default:0" json:"network_outreach"`
	MeetingsNotes   string    `gorm:"type:text" json:"meetings_notes,omitempty"`
	Blockers        string    `gorm:"type:text" json:"blockers,omitempty"`
	Wins            string    `gorm:"type:text" json:"wins,omitempty"`
	ActionItems     string    `gorm:"type:text" json:"action_items,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
