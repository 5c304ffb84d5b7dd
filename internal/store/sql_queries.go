package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/fogonmemorias/restaurante-api/models"
)

const (
	createUser = `INSERT INTO usuarios (nombre, apellido, rol, correo, telefono, direccion, contrasena)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, nombre, apellido, rol, correo, telefono, direccion, contrasena;`

	findUserByEmail = `SELECT id, nombre, apellido, rol, correo, telefono, direccion, contrasena
    FROM usuarios
    WHERE correo = $1;`

	getAllUsers = `SELECT id, nombre, apellido, rol, correo, telefono, direccion, contrasena
    FROM usuarios;`

	deleteUserByEmail = `DELETE FROM usuarios WHERE correo = $1;`

	createDish = `INSERT INTO plato (nombre, descripcion, imagen, calorias, precio)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	getAllDishes = `SELECT id, nombre, descripcion, imagen, calorias, precio
    FROM plato;`

	getDishByID = `SELECT id, nombre, descripcion, imagen, calorias, precio
    FROM plato
    WHERE id = $1;`

	deleteDish = `DELETE FROM plato WHERE id = $1;`

	// Ingredient-type upsert: insert-if-absent; a conflict returns no row and
	// the caller falls back to findIngredientTypeByName for the existing id.
	upsertIngredientType = `INSERT INTO tipo_ingrediente (tipo) VALUES ($1)
    ON CONFLICT (tipo) DO NOTHING
    RETURNING id;`

	findIngredientTypeByName = `SELECT id FROM tipo_ingrediente WHERE tipo = $1;`

	createIngredient = `INSERT INTO ingrediente (nombre, tipo_ingrediente_id)
    VALUES ($1, $2)
    RETURNING id;`

	linkDishIngredient = `INSERT INTO ingrediente_plato (plato_id, ingrediente_id)
    VALUES ($1, $2);`

	getDishIngredients = `SELECT ip.plato_id, i.id AS ingrediente_id, i.nombre, ti.tipo
    FROM ingrediente_plato AS ip
    INNER JOIN ingrediente AS i ON i.id = ip.ingrediente_id
    INNER JOIN tipo_ingrediente AS ti ON ti.id = i.tipo_ingrediente_id
    WHERE ip.plato_id = $1;`

	deleteDishLinks = `DELETE FROM ingrediente_plato WHERE plato_id = $1;`

	// Ingredients left without a single link row after the dish's links are
	// removed: candidates for the sweep delete.
	getUnreferencedIngredients = `SELECT i.id
    FROM ingrediente AS i
    LEFT JOIN ingrediente_plato AS ip ON i.id = ip.ingrediente_id
    WHERE ip.ingrediente_id IS NULL;`

	getAllIngredients = `SELECT id, nombre, tipo_ingrediente_id FROM ingrediente;`

	getIngredientByID = `SELECT id, nombre, tipo_ingrediente_id
    FROM ingrediente
    WHERE id = $1;`
)

// psql is the statement builder shared by all dynamic queries; PostgreSQL
// uses $n placeholders rather than squirrel's default question marks.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateDishQuery maps the present fields of a dish update onto a
// parameterised UPDATE ... SET statement selecting by dish id.
//
// Returns [ErrNoFieldsToUpdate] when every field is nil so that a degenerate
// WHERE-only statement is never issued.
func buildUpdateDishQuery(id int64, update models.DishUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder := psql.Update(models.Dish{}.TableName())

	if update.Name != nil {
		builder = builder.Set("nombre", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("descripcion", *update.Description)
	}
	if update.Image != nil {
		builder = builder.Set("imagen", *update.Image)
	}
	if update.Calories != nil {
		builder = builder.Set("calorias", *update.Calories)
	}
	if update.Price != nil {
		builder = builder.Set("precio", *update.Price)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, nombre, descripcion, imagen, calorias, precio").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery maps the present fields of a user update onto a
// parameterised UPDATE ... SET statement selecting by email. The email
// itself is never part of the SET clause.
//
// Returns [ErrNoFieldsToUpdate] when every updatable field is nil.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder := psql.Update(models.User{}.TableName())

	if update.FirstName != nil {
		builder = builder.Set("nombre", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("apellido", *update.LastName)
	}
	if update.Role != nil {
		builder = builder.Set("rol", *update.Role)
	}
	if update.Phone != nil {
		builder = builder.Set("telefono", *update.Phone)
	}
	if update.Address != nil {
		builder = builder.Set("direccion", *update.Address)
	}

	query, args, err := builder.
		Where(sq.Eq{"correo": update.Email}).
		Suffix("RETURNING id, nombre, apellido, rol, correo, telefono, direccion, contrasena").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteIngredientsQuery produces the bulk sweep delete for the given
// ingredient ids. squirrel expands the slice into IN ($1,$2,...) bound
// placeholders, so the id list is never interpolated into the SQL text.
func buildDeleteIngredientsQuery(ids []int64) (string, []any, error) {
	if len(ids) == 0 {
		return "", nil, fmt.Errorf("%w: empty id list", ErrBuildingSQLQuery)
	}

	query, args, err := psql.
		Delete(models.Ingredient{}.TableName()).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
