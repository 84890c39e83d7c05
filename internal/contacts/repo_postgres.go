package contacts

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// PostgresRepo implements Repository over database/sql.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

const contactColumns = `
id, number, secondary_number, name, company_name, email, deal_value, lead_score,
disposition, address, extra, remarks, note, created_on,
COALESCE(assigned_to, ''), status, COALESCE(list_id, '')`

func scanContact(row interface{ Scan(...any) error }) (Contact, error) {
	var c Contact
	err := row.Scan(
		&c.ID,
		&c.Number,
		&c.SecondaryNumber,
		&c.Name,
		&c.CompanyName,
		&c.Email,
		&c.DealValue,
		&c.LeadScore,
		&c.Disposition,
		&c.Address,
		&c.Extra,
		&c.Remarks,
		&c.Note,
		&c.CreatedOn,
		&c.AssignedTo,
		&c.Status,
		&c.ListID,
	)
	return c, err
}

func (r *PostgresRepo) Create(ctx context.Context, c Contact) error {
	const q = `
INSERT INTO contacts (
  id, number, secondary_number, name, company_name, email, deal_value, lead_score,
  disposition, address, extra, remarks, note, created_on, assigned_to, status, list_id
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,NULLIF($15,''),$16,NULLIF($17,''))
`
	_, err := r.db.ExecContext(ctx, q,
		c.ID, c.Number, c.SecondaryNumber, c.Name, c.CompanyName, c.Email,
		c.DealValue, c.LeadScore, c.Disposition, c.Address, c.Extra, c.Remarks,
		c.Note, c.CreatedOn, c.AssignedTo, c.Status, c.ListID,
	)
	return err
}

func (r *PostgresRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM contacts WHERE number = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, number).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Contact, error) {
	q := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_on`
	return r.queryContacts(ctx, q)
}

func (r *PostgresRepo) ListByList(ctx context.Context, listID string) ([]Contact, error) {
	q := `SELECT ` + contactColumns + ` FROM contacts WHERE list_id = $1 ORDER BY created_on`
	return r.queryContacts(ctx, q, listID)
}

func (r *PostgresRepo) CountByList(ctx context.Context, listID string) (int, error) {
	const q = `SELECT COUNT(*) FROM contacts WHERE list_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, listID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresRepo) NumbersInList(ctx context.Context, listID string) ([]string, error) {
	const q = `SELECT number FROM contacts WHERE list_id = $1`
	rows, err := r.db.QueryContext(ctx, q, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

func (r *PostgresRepo) BulkInsert(ctx context.Context, batch []Contact) error {
	if len(batch) == 0 {
		return nil
	}

	// One multi-row INSERT keeps the import a single storage call.
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`
INSERT INTO contacts (
  id, number, secondary_number, name, company_name, email, deal_value, lead_score,
  disposition, address, extra, remarks, note, created_on, assigned_to, status, list_id
) VALUES `)
	for i, c := range batch {
		if i > 0 {
			sb.WriteString(",")
		}
		base := i * 17
		sb.WriteString("(")
		for j := 1; j <= 17; j++ {
			if j > 1 {
				sb.WriteString(",")
			}
			switch j {
			case 15, 17:
				sb.WriteString("NULLIF($" + strconv.Itoa(base+j) + ",'')")
			default:
				sb.WriteString("$" + strconv.Itoa(base+j))
			}
		}
		sb.WriteString(")")
		args = append(args,
			c.ID, c.Number, c.SecondaryNumber, c.Name, c.CompanyName, c.Email,
			c.DealValue, c.LeadScore, c.Disposition, c.Address, c.Extra, c.Remarks,
			c.Note, c.CreatedOn, c.AssignedTo, c.Status, c.ListID,
		)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return err
}

func (r *PostgresRepo) queryContacts(ctx context.Context, q string, args ...any) ([]Contact, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
