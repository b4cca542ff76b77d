package stdlib

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/foxlang/fox/internal/engine"
)

// Db is a handle to an open database. Cloning the value clones the
// handle, not the connection: both handles reach the same database.
type Db struct {
	conn *sql.DB
	dsn  string
}

func (d *Db) Repr() string {
	return fmt.Sprintf("<Db %s>", d.dsn)
}

func (d *Db) CloneNative() engine.NativeObject {
	return &Db{conn: d.conn, dsn: d.dsn}
}

func sqlError(err error) error {
	return &engine.CastError{Expected: fmt.Sprintf("Sql(%v)", err)}
}

// registerSql installs the SQL words over the sqlite driver.
//
//	"file.db" Sql.open            -- push a Db
//	db "CREATE ..." Sql.exec      -- run a statement, keep the Db
//	db "SELECT ..." Sql.query     -- keep the Db, push rows as a List of Lists
//	db Sql.close
func registerSql(e *engine.Engine) {
	define(e, "Sql.open", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		dsn, err := v.AsStr()
		if err != nil {
			return err
		}
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return sqlError(err)
		}
		st.PushNative(&Db{conn: conn, dsn: dsn})
		return nil
	})

	define(e, "Sql.exec", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		qv, err := st.Pop()
		if err != nil {
			return err
		}
		query, err := qv.AsStr()
		if err != nil {
			return err
		}
		dv, err := st.Pop()
		if err != nil {
			return err
		}
		db, err := engine.NativeAs[*Db](dv)
		if err != nil {
			return err
		}
		if _, err := db.conn.Exec(query); err != nil {
			return sqlError(err)
		}
		st.Push(dv)
		return nil
	})

	define(e, "Sql.query", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		qv, err := st.Pop()
		if err != nil {
			return err
		}
		query, err := qv.AsStr()
		if err != nil {
			return err
		}
		dv, err := st.Pop()
		if err != nil {
			return err
		}
		db, err := engine.NativeAs[*Db](dv)
		if err != nil {
			return err
		}

		rows, err := db.conn.Query(query)
		if err != nil {
			return sqlError(err)
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return sqlError(err)
		}

		result := NewList()
		for rows.Next() {
			vals := make([]interface{}, len(cols))
			ptrs := make([]interface{}, len(cols))
			for i := range vals {
				ptrs[i] = &vals[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return sqlError(err)
			}
			row := NewList()
			for _, val := range vals {
				row.Items = append(row.Items, sqlValue(val))
			}
			result.Items = append(result.Items, engine.Native(row))
		}
		if err := rows.Err(); err != nil {
			return sqlError(err)
		}

		st.Push(dv)
		st.PushNative(result)
		return nil
	})

	define(e, "Sql.close", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		dv, err := st.Pop()
		if err != nil {
			return err
		}
		db, err := engine.NativeAs[*Db](dv)
		if err != nil {
			return err
		}
		if err := db.conn.Close(); err != nil {
			return sqlError(err)
		}
		return nil
	})
}

// sqlValue converts a driver value into a stack value.
func sqlValue(val interface{}) engine.Value {
	switch v := val.(type) {
	case nil:
		return engine.Str("")
	case int64:
		return engine.Num(float64(v))
	case float64:
		return engine.Num(v)
	case bool:
		return engine.Bool(v)
	case []byte:
		return engine.Str(string(v))
	case string:
		return engine.Str(v)
	case time.Time:
		return engine.Str(v.Format(time.RFC3339))
	default:
		return engine.Str(fmt.Sprint(v))
	}
}
