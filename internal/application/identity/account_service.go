package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/auth"
	"github.com/petroenergy/petrodash/internal/infrastructure/upload"
)

// bulkAccountHeaders is the CSV template column order for bulk account
// uploads. Birthdates use MM/DD/YYYY.
var bulkAccountHeaders = []string{
	"email", "role", "power_plant_id", "company_id",
	"emp_id", "first_name", "middle_name", "last_name", "suffix",
	"contact_number", "address", "birthdate", "gender",
}

const bulkBirthdateFormat = "01/02/2006"

// AccountService handles account management operations.
type AccountService struct {
	accountRepo identity.AccountRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	auditor     audit.Recorder
	logger      *zap.Logger
}

// NewAccountService creates a new account management service.
func NewAccountService(
	accountRepo identity.AccountRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	auditor audit.Recorder,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		auditor:     auditor,
		logger:      logger,
	}
}

// CreateAccount creates one account with its profile. An empty password
// falls back to the default password.
func (s *AccountService) CreateAccount(ctx context.Context, actorID string, input CreateAccountInput) (*AccountDetail, error) {
	exists, err := s.accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	var account *identity.Account
	if input.Password != "" {
		account, err = identity.NewAccountWithPassword(input.Email, input.Password, input.Role, input.PowerPlantID, input.CompanyID)
	} else {
		account, err = identity.NewAccount(input.Email, input.Role, input.PowerPlantID, input.CompanyID)
	}
	if err != nil {
		return nil, err
	}

	profile := &identity.Profile{
		EmpID:         input.EmpID,
		AccountID:     account.AccountID,
		FirstName:     input.FirstName,
		MiddleName:    input.MiddleName,
		LastName:      input.LastName,
		Suffix:        input.Suffix,
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
		Birthdate:     input.Birthdate,
		Gender:        input.Gender,
	}
	now := time.Now().UTC()
	profile.ProfileCreated = now
	profile.ProfileUpdated = now

	if err := s.accountRepo.Create(ctx, account, profile); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, audit.NewEntry(
		actorID, "account", account.AccountID, audit.ActionCreate,
		"", account.Email, "created account with role "+account.Role.Name()))

	s.logger.Info("Account created",
		zap.String("account_id", account.AccountID),
		zap.String("role", string(account.Role)))

	detail := &AccountDetail{
		AccountInfo: accountInfo(account),
		EmpID:       profile.EmpID,
		DateCreated: account.DateCreated,
		DateUpdated: account.DateUpdated,
	}
	detail.FullName = profile.FullName()
	return detail, nil
}

// ListAccounts returns all accounts with their profiles, most recently
// updated first.
func (s *AccountService) ListAccounts(ctx context.Context) ([]AccountDetail, error) {
	pairs, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AccountDetail, 0, len(pairs))
	for i := range pairs {
		account := pairs[i].Account
		profile := pairs[i].Profile
		detail := AccountDetail{
			AccountInfo:   accountInfo(&account),
			EmpID:         profile.EmpID,
			ContactNumber: profile.ContactNumber,
			Address:       profile.Address,
			Birthdate:     profile.Birthdate,
			Gender:        profile.Gender,
			DateCreated:   account.DateCreated,
			DateUpdated:   account.DateUpdated,
		}
		detail.FullName = profile.FullName()
		out = append(out, detail)
	}
	return out, nil
}

// Activate re-enables a deactivated account.
func (s *AccountService) Activate(ctx context.Context, actorID, accountID string) error {
	return s.setStatus(ctx, actorID, accountID, true)
}

// Deactivate disables an account. Its tokens fail validation afterwards.
func (s *AccountService) Deactivate(ctx context.Context, actorID, accountID string) error {
	return s.setStatus(ctx, actorID, accountID, false)
}

func (s *AccountService) setStatus(ctx context.Context, actorID, accountID string, active bool) error {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	oldStatus := string(account.Status)
	if active {
		account.Activate()
	} else {
		account.Deactivate()
	}
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	if !active {
		// Cut off every outstanding token for the account; the refresh
		// expiration bounds the oldest token still in circulation.
		if err := s.blacklist.AddAccountTokensToBlacklist(ctx, accountID, s.jwtService.GetRefreshTokenExpiration()); err != nil {
			s.logger.Error("Failed to invalidate account tokens",
				zap.String("account_id", accountID),
				zap.Error(err))
		}
	}

	s.auditor.Record(ctx, audit.NewEntry(
		actorID, "account", accountID, audit.ActionUpdate,
		oldStatus, string(account.Status), "changed account status"))

	s.logger.Info("Account status changed",
		zap.String("account_id", accountID),
		zap.String("status", string(account.Status)))
	return nil
}

// Stats returns account counts per role and status for the admin KPI
// dashboard.
func (s *AccountService) Stats(ctx context.Context) (identity.AccountStats, error) {
	return s.accountRepo.Stats(ctx)
}

// BulkCreate parses a CSV of accounts and creates them in one
// transaction. Rows missing email, first name or last name are skipped
// rather than failing the whole upload.
func (s *AccountService) BulkCreate(ctx context.Context, actorID string, data []byte) (*BulkCreateResult, error) {
	parser, err := upload.ParseFromBytes(data)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}
	if missing := parser.ValidateHeaders([]string{"email", "first_name", "last_name"}); len(missing) > 0 {
		return nil, shared.NewDomainError("MISSING_HEADERS",
			"CSV is missing required headers: "+strings.Join(missing, ", "))
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}
	if len(rows) == 0 {
		return nil, shared.NewDomainError("EMPTY_FILE", "CSV contains no data rows")
	}

	result := &BulkCreateResult{TotalRows: len(rows)}
	pairs := make([]identity.AccountWithProfile, 0, len(rows))
	seenEmails := make(map[string]int)
	seenEmpIDs := make(map[string]int)

	for _, row := range rows {
		email := strings.TrimSpace(row.Get("email"))
		firstName := strings.TrimSpace(row.Get("first_name"))
		lastName := strings.TrimSpace(row.Get("last_name"))
		if email == "" || firstName == "" || lastName == "" {
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				Line:   row.LineNumber,
				Reason: "missing email, first name or last name",
			})
			continue
		}
		// emp_id is the profile primary key, so blank or repeated
		// values would collide on insert.
		empID := strings.TrimSpace(row.Get("emp_id"))
		if empID == "" {
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				Line:   row.LineNumber,
				Reason: "missing emp_id",
			})
			continue
		}
		if prev, dup := seenEmpIDs[empID]; dup {
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				Line:   row.LineNumber,
				Reason: fmt.Sprintf("duplicate of emp_id on line %d", prev),
			})
			continue
		}
		if prev, dup := seenEmails[strings.ToLower(email)]; dup {
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				Line:   row.LineNumber,
				Reason: fmt.Sprintf("duplicate of email on line %d", prev),
			})
			continue
		}
		exists, err := s.accountRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				Line:   row.LineNumber,
				Reason: "email already registered",
			})
			continue
		}

		role := identity.RoleCode(strings.TrimSpace(row.GetOrDefault("role", string(identity.RoleEncoder))))
		if !role.Valid() {
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				Line:   row.LineNumber,
				Reason: "unknown role code " + string(role),
			})
			continue
		}

		account, err := identity.NewAccount(email, role, row.Get("power_plant_id"), row.Get("company_id"))
		if err != nil {
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				Line:   row.LineNumber,
				Reason: err.Error(),
			})
			continue
		}

		var birthdate *time.Time
		if raw := strings.TrimSpace(row.Get("birthdate")); raw != "" {
			parsed, err := time.Parse(bulkBirthdateFormat, raw)
			if err != nil {
				result.SkippedRows = append(result.SkippedRows, SkippedRow{
					Line:   row.LineNumber,
					Reason: "birthdate must be MM/DD/YYYY",
				})
				continue
			}
			birthdate = &parsed
		}

		now := time.Now().UTC()
		pairs = append(pairs, identity.AccountWithProfile{
			Account: *account,
			Profile: identity.Profile{
				EmpID:          empID,
				AccountID:      account.AccountID,
				FirstName:      firstName,
				MiddleName:     row.Get("middle_name"),
				LastName:       lastName,
				Suffix:         row.Get("suffix"),
				ContactNumber:  row.Get("contact_number"),
				Address:        row.Get("address"),
				Birthdate:      birthdate,
				Gender:         row.Get("gender"),
				ProfileCreated: now,
				ProfileUpdated: now,
			},
		})
		seenEmails[strings.ToLower(email)] = row.LineNumber
		seenEmpIDs[empID] = row.LineNumber
	}

	if len(pairs) > 0 {
		if err := s.accountRepo.CreateBatch(ctx, pairs); err != nil {
			return nil, err
		}
	}
	result.Created = len(pairs)
	result.Skipped = len(result.SkippedRows)

	s.auditor.Record(ctx, audit.NewEntry(
		actorID, "account", "", audit.ActionBulkCreate,
		"", fmt.Sprintf("%d", result.Created),
		fmt.Sprintf("bulk created %d accounts, skipped %d rows", result.Created, result.Skipped)))

	s.logger.Info("Bulk account upload processed",
		zap.Int("total_rows", result.TotalRows),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// BulkTemplate returns the CSV template for bulk account uploads: the
// header row plus one sample row.
func (s *AccountService) BulkTemplate() []byte {
	var b strings.Builder
	b.WriteString(strings.Join(bulkAccountHeaders, ","))
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		"maria.santos@petroenergy.com.ph", "R05", "PSC", "PSC",
		"EMP-1001", "Maria", "C", "Santos", "",
		"+63-917-000-0000", "Makati City", "03/15/1990", "Female",
	}, ","))
	b.WriteString("\n")
	return []byte(b.String())
}
