package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

// RuleRepository handles rule definitions and their options
type RuleRepository struct {
	db *sqlx.DB
}

// ruleRow is a prompt_rules record
type ruleRow struct {
	Key             string `db:"rule_key"`
	Name            string `db:"rule_name"`
	Description     string `db:"rule_description"`
	Type            string `db:"rule_type"`
	Category        string `db:"rule_category"`
	DefaultValue    string `db:"default_value"`
	ValidationRules string `db:"validation_rules"`
	Order           int    `db:"display_order"`
}

type optionRow struct {
	RuleKey string `db:"rule_key"`
	domain.RuleOption
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *sqlx.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Seed inserts rules and options missing from the database. Existing records are kept,
// so edits made directly in the database survive restarts.
func (r *RuleRepository) Seed(ctx context.Context, schema domain.Schema) error {
	return withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for _, rule := range schema {
			bounds := ""
			if rule.Bounds != nil {
				data, err := json.Marshal(rule.Bounds)
				if err != nil {
					return fmt.Errorf("marshal bounds of %s: %w", rule.Key, err)
				}
				bounds = string(data)
			}
			_, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO prompt_rules
					(rule_key, rule_name, rule_description, rule_type, rule_category, default_value, validation_rules, display_order)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				rule.Key, rule.Label, rule.Description, string(rule.Type), rule.Category, rule.Default, bounds, rule.Order)
			if err != nil {
				return fmt.Errorf("insert rule %s: %w", rule.Key, err)
			}

			for _, opt := range rule.Options {
				_, err := tx.ExecContext(ctx, `
					INSERT OR IGNORE INTO prompt_rule_options
						(rule_key, option_key, option_label, option_description, display_order)
					VALUES (?, ?, ?, ?, ?)`,
					rule.Key, opt.Key, opt.Label, opt.Description, opt.Order)
				if err != nil {
					return fmt.Errorf("insert option %s.%s: %w", rule.Key, opt.Key, err)
				}
			}
		}

		return tx.Commit()
	})
}

// Schema loads active rules with their options
func (r *RuleRepository) Schema(ctx context.Context) (domain.Schema, error) {
	var rows []ruleRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT rule_key, rule_name, rule_description, rule_type, rule_category,
		       default_value, validation_rules, display_order
		FROM prompt_rules WHERE is_active = 1`)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}

	var opts []optionRow
	err = r.db.SelectContext(ctx, &opts, `
		SELECT o.rule_key, o.option_key, o.option_label, o.option_description, o.display_order
		FROM prompt_rule_options o
		JOIN prompt_rules r ON r.rule_key = o.rule_key
		WHERE r.is_active = 1
		ORDER BY o.rule_key, o.display_order`)
	if err != nil {
		return nil, fmt.Errorf("get rule options: %w", err)
	}

	rules := make(map[string]domain.RuleDefinition, len(rows))
	for _, row := range rows {
		rule, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		rules[row.Key] = rule
	}
	options := map[string][]domain.RuleOption{}
	for _, o := range opts {
		options[o.RuleKey] = append(options[o.RuleKey], o.RuleOption)
	}

	return domain.NewSchema(rules, options), nil
}

// SetActive enables or disables a rule
func (r *RuleRepository) SetActive(ctx context.Context, key string, active bool) error {
	res, err := r.db.ExecContext(ctx, "UPDATE prompt_rules SET is_active = ? WHERE rule_key = ?", active, key)
	if err != nil {
		return fmt.Errorf("update rule status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("rule %s not found", key)
	}
	return nil
}

func (row ruleRow) toDomain() (domain.RuleDefinition, error) {
	rule := domain.RuleDefinition{
		Key:         row.Key,
		Label:       row.Name,
		Description: row.Description,
		Type:        domain.RuleType(row.Type),
		Category:    row.Category,
		Default:     row.DefaultValue,
		Order:       row.Order,
	}
	if row.ValidationRules != "" {
		var bounds domain.Bounds
		if err := json.Unmarshal([]byte(row.ValidationRules), &bounds); err != nil {
			return rule, fmt.Errorf("parse validation rules of %s: %w", row.Key, err)
		}
		rule.Bounds = &bounds
	}
	return rule, nil
}
