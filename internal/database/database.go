package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Table Structure:
//
// CREATE TABLE IF NOT EXISTS recruiter (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	email VARCHAR(255) NOT NULL UNIQUE,
// 	created_at TIMESTAMP NOT NULL,
// 	updated_at TIMESTAMP DEFAULT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS recruiter_sign_on_token (
// 	token CHAR(27) NOT NULL,
// 	email VARCHAR(255) NOT NULL,
// 	created_at TIMESTAMP NOT NULL
// );
// CREATE UNIQUE INDEX recruiter_sign_on_token_idx ON recruiter_sign_on_token (token);

// CREATE TABLE IF NOT EXISTS company (
// 	id SERIAL NOT NULL,
// 	slug VARCHAR(200) NOT NULL UNIQUE,
// 	name VARCHAR(200) NOT NULL,
// 	recruiter_id CHAR(27) NOT NULL UNIQUE REFERENCES recruiter (id),
// 	primary_color CHAR(7) NOT NULL DEFAULT '#000000',
// 	secondary_color CHAR(7) NOT NULL DEFAULT '#FFFFFF',
// 	logo_image_id CHAR(27) DEFAULT NULL,
// 	banner_image_id CHAR(27) DEFAULT NULL,
// 	culture_video_url VARCHAR(255) DEFAULT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	updated_at TIMESTAMP DEFAULT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE UNIQUE INDEX company_slug_idx ON company (slug);

// CREATE TABLE IF NOT EXISTS content_section (
// 	id SERIAL NOT NULL,
// 	company_id INTEGER NOT NULL REFERENCES company (id) ON DELETE CASCADE,
// 	section_type VARCHAR(20) NOT NULL,
// 	title VARCHAR(200) NOT NULL,
// 	content TEXT NOT NULL,
// 	"order" INTEGER NOT NULL DEFAULT 0,
// 	is_active BOOLEAN NOT NULL DEFAULT TRUE,
// 	created_at TIMESTAMP NOT NULL,
// 	updated_at TIMESTAMP DEFAULT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE INDEX content_section_company_id_idx ON content_section (company_id);

// CREATE TABLE IF NOT EXISTS job (
// 	id SERIAL NOT NULL,
// 	company_id INTEGER NOT NULL REFERENCES company (id) ON DELETE CASCADE,
// 	title VARCHAR(200) NOT NULL,
// 	description TEXT DEFAULT NULL,
// 	location VARCHAR(200) NOT NULL,
// 	work_policy VARCHAR(20) NOT NULL DEFAULT 'onsite',
// 	department VARCHAR(100) DEFAULT NULL,
// 	employment_type VARCHAR(20) NOT NULL DEFAULT 'full-time',
// 	job_type VARCHAR(20) DEFAULT NULL, -- legacy alias of employment_type
// 	experience VARCHAR(20) DEFAULT NULL,
// 	salary_range VARCHAR(100) DEFAULT NULL,
// 	posted_date VARCHAR(100) NOT NULL DEFAULT 'Just now',
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE INDEX job_company_id_idx ON job (company_id);

// CREATE TABLE IF NOT EXISTS image (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	bytes BYTEA NOT NULL,
// 	media_type VARCHAR(100) NOT NULL,
// 	PRIMARY KEY(id)
// );

// GetDbConn tries to establish a connection to postgres and return the connection handler
func GetDbConn(databaseUser string, databasePassword string, databaseHost string, databasePort string, databaseName string, sslMode string) (*sql.DB, error) {
	databaseURL := fmt.Sprintf("postgres://%v:%v@%v:%v/%v?sslmode=%s",
		databaseUser,
		databasePassword,
		databaseHost,
		databasePort,
		databaseName,
		sslMode,
	)
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(20)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// CloseDbConn closes db conn
func CloseDbConn(conn *sql.DB) {
	conn.Close()
}
