package repository

// Schema creates the tables used by the PostgreSQL repository.
const Schema = `
CREATE TABLE IF NOT EXISTS places (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	country_iso VARCHAR(2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS accounts (
	uid BIGINT PRIMARY KEY,
	balance INTEGER NOT NULL DEFAULT 0,
	used INTEGER NOT NULL DEFAULT 0,
	last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payment_logs (
	id BIGSERIAL PRIMARY KEY,
	ts TIMESTAMPTZ NOT NULL,
	uid BIGINT NOT NULL,
	amount INTEGER NOT NULL,
	payload TEXT NOT NULL,
	status TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS payment_logs_uid_idx ON payment_logs (uid);
`
