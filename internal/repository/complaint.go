package repository

import (
	"github.com/improvemycity/portal-go/models"
	"gorm.io/gorm"
)

type ComplaintRepo interface {
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (models.Complaint, error)
	ListComplaintsByUser(userID uint) ([]models.Complaint, error)
	ListComplaintsByCategory(categoryID uint) ([]models.Complaint, error)
	CountByCategory(categoryID uint) (models.ComplaintSummary, error)
	AssignIfUnassigned(complaintID, employeeID uint) (bool, error)
	ResolveIfUnresolved(complaintID uint) (bool, error)
	WithTx(tx *gorm.DB) ComplaintRepo
}

type DBComplaintRepo struct {
	db *gorm.DB
}

func NewComplaintRepo(db *gorm.DB) *DBComplaintRepo {
	return &DBComplaintRepo{db: db}
}

func (r *DBComplaintRepo) CreateComplaint(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

func (r *DBComplaintRepo) GetComplaintByID(id uint) (models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.
		Preload("User").
		Preload("Category").
		Preload("SubCategory").
		Preload("AssignedEmployee").
		First(&complaint, id).Error
	if err != nil {
		return complaint, err
	}
	return complaint, nil
}

func (r *DBComplaintRepo) ListComplaintsByUser(userID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Category").
		Preload("SubCategory").
		Preload("AssignedEmployee").
		Order("created_at desc").
		Find(&complaints).Error
	return complaints, err
}

func (r *DBComplaintRepo) ListComplaintsByCategory(categoryID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.
		Where("category_id = ?", categoryID).
		Preload("User").
		Preload("Category").
		Preload("SubCategory").
		Preload("AssignedEmployee").
		Order("created_at desc").
		Find(&complaints).Error
	return complaints, err
}

func (r *DBComplaintRepo) CountByCategory(categoryID uint) (models.ComplaintSummary, error) {
	var summary models.ComplaintSummary
	type row struct {
		Status models.ComplaintStatus
		N      int64
	}
	var rows []row
	err := r.db.Model(&models.Complaint{}).
		Select("status, count(*) as n").
		Where("category_id = ?", categoryID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return summary, err
	}
	for _, rw := range rows {
		summary.Total += rw.N
		switch rw.Status {
		case models.ComplaintStatusPending:
			summary.Pending = rw.N
		case models.ComplaintStatusInProgress:
			summary.InProgress = rw.N
		case models.ComplaintStatusResolved:
			summary.Resolved = rw.N
		}
	}
	return summary, nil
}

// AssignIfUnassigned is the compare-and-set behind assignment: the row
// is claimed only while assigned_employee_id is still null, so two
// racing employees get exactly one winner. Returns false for the loser.
func (r *DBComplaintRepo) AssignIfUnassigned(complaintID, employeeID uint) (bool, error) {
	res := r.db.Model(&models.Complaint{}).
		Where("id = ? AND assigned_employee_id IS NULL", complaintID).
		Updates(map[string]interface{}{
			"assigned_employee_id": employeeID,
			"status":               models.ComplaintStatusInProgress,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ResolveIfUnresolved marks the complaint Resolved unless it already is;
// Resolved is terminal.
func (r *DBComplaintRepo) ResolveIfUnresolved(complaintID uint) (bool, error) {
	res := r.db.Model(&models.Complaint{}).
		Where("id = ? AND status <> ?", complaintID, models.ComplaintStatusResolved).
		Update("status", models.ComplaintStatusResolved)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBComplaintRepo) WithTx(tx *gorm.DB) ComplaintRepo {
	if tx == nil {
		return r
	}
	return &DBComplaintRepo{db: tx}
}
