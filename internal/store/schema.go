package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
    project_id    TEXT PRIMARY KEY,
    project_name  TEXT NOT NULL,
    total_budget  REAL NOT NULL,
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    project_id    TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
    category      TEXT NOT NULL,
    name          TEXT NOT NULL,
    budgeted      REAL NOT NULL,
    position      INTEGER NOT NULL,
    PRIMARY KEY (project_id, category)
);

CREATE TABLE IF NOT EXISTS expenses (
    project_id     TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
    category       TEXT NOT NULL,
    expense_id     TEXT NOT NULL,
    description    TEXT NOT NULL,
    amount         REAL NOT NULL,
    expense_date   TEXT,
    vendor         TEXT,
    invoice_number TEXT,
    payment_status TEXT NOT NULL,
    notes          TEXT,
    position       INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_project ON expenses(project_id, category, position);
`
