package Workflow

import (
	"Evexia/Models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultSessionMinutes = 60

// SessionInput carries the creatable fields of a session. BillAmount is
// only honored when no package covers the session; packaged sessions are
// billed at the package's per-session price.
type SessionInput struct {
	AccountID       uint
	ClientID        uint
	StartedAt       time.Time
	DurationMinutes uint
	Notes           string
	BillAmount      float64
}

// PackageDraw is the effect of drawing one session from a package.
// SessionNumber is both the session's number within the package and the
// package's new used count.
type PackageDraw struct {
	SessionNumber uint
	BillAmount    float64
	Status        string
}

// DrawFromPackage computes the draw for the next session against pkg.
// ok is false when the package is not active or has no capacity left.
func DrawFromPackage(pkg Models.Package) (PackageDraw, bool) {
	if pkg.Status != Models.PackageActive || pkg.SessionsUsed >= pkg.SessionsTotal {
		return PackageDraw{}, false
	}
	draw := PackageDraw{
		SessionNumber: pkg.SessionsUsed + 1,
		BillAmount:    pkg.PricePerSession,
		Status:        Models.PackageActive,
	}
	if draw.SessionNumber >= pkg.SessionsTotal {
		draw.Status = Models.PackageCompleted
	}
	return draw, true
}

// CreateSession records a session for a client, drawing it from the
// client's current active package when one has capacity left: the package's
// used count is incremented, the session is numbered within the package and
// billed at the package price, and a package that fills up is marked
// completed. Runs in a single transaction; the package row is locked and the
// update re-checks capacity so duplicate submissions cannot push the used
// count past the total.
func CreateSession(db *gorm.DB, input SessionInput) (Models.Session, error) {
	if input.StartedAt.IsZero() {
		input.StartedAt = time.Now()
	}
	if input.DurationMinutes == 0 {
		input.DurationMinutes = DefaultSessionMinutes
	}

	session := Models.Session{
		AccountID:       input.AccountID,
		ClientID:        input.ClientID,
		StartedAt:       input.StartedAt,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		BillAmount:      input.BillAmount,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var pkg Models.Package
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&Models.Package{}).
			Where("account_id = ? AND client_id = ? AND status = ? AND sessions_used < sessions_total",
				input.AccountID, input.ClientID, Models.PackageActive).
			Order("start_date DESC NULLS LAST, id DESC").
			First(&pkg).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		if err == nil {
			draw, ok := DrawFromPackage(pkg)
			if ok {
				result := tx.Model(&Models.Package{}).
					Where("id = ? AND sessions_used < sessions_total", pkg.ID).
					Updates(map[string]interface{}{
						"sessions_used": draw.SessionNumber,
						"status":        draw.Status,
					})
				if result.Error != nil {
					return result.Error
				}
				ok = result.RowsAffected == 1
			}
			if ok {
				number := draw.SessionNumber
				session.PackageID = &pkg.ID
				session.SessionNumberInPackage = &number
				session.BillAmount = draw.BillAmount
			}
		}

		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return Models.Session{}, err
	}

	return session, nil
}
