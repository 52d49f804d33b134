package mysql

const upsertBusinessSQL = `
INSERT INTO businesses
  (id, name, category, description, address, phone, website, lat, lon, rating, reviews, image)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  category    = VALUES(category),
  description = VALUES(description),
  address     = VALUES(address),
  phone       = VALUES(phone),
  website     = VALUES(website),
  lat         = VALUES(lat),
  lon         = VALUES(lon),
  rating      = VALUES(rating),
  reviews     = VALUES(reviews),
  image       = VALUES(image),
  updated_at  = CURRENT_TIMESTAMP
`

const upsertAccommodationSQL = `
INSERT INTO accommodations
  (id, name, category, description, address, phone, website, lat, lon, rating, reviews, image,
   price, price_unit, amenities, max_guests, check_in_time, check_out_time)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name           = VALUES(name),
  category       = VALUES(category),
  description    = VALUES(description),
  address        = VALUES(address),
  phone          = VALUES(phone),
  website        = VALUES(website),
  lat            = VALUES(lat),
  lon            = VALUES(lon),
  rating         = VALUES(rating),
  reviews        = VALUES(reviews),
  image          = VALUES(image),
  price          = VALUES(price),
  price_unit     = VALUES(price_unit),
  amenities      = VALUES(amenities),
  max_guests     = VALUES(max_guests),
  check_in_time  = VALUES(check_in_time),
  check_out_time = VALUES(check_out_time),
  updated_at     = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO catalog_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

const listBusinessesSQL = `
SELECT id, name, category, description, address, phone, website, lat, lon, rating, reviews, image
FROM businesses
ORDER BY id
`

const listAccommodationsSQL = `
SELECT id, name, category, description, address, phone, website, lat, lon, rating, reviews, image,
       price, price_unit, amenities, max_guests, check_in_time, check_out_time
FROM accommodations
ORDER BY id
`

const getAccommodationSQL = `
SELECT id, name, category, description, address, phone, website, lat, lon, rating, reviews, image,
       price, price_unit, amenities, max_guests, check_in_time, check_out_time
FROM accommodations
WHERE id = ?
`
