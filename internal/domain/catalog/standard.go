package catalog

import (
	"math"

	"github.com/jhoicas/conversor-api/internal/domain/entity"
)

// Ids de las categorías integradas.
const (
	Length          = "length"
	Temperature     = "temperature"
	Weight          = "weight"
	Volume          = "volume"
	Area            = "area"
	Speed           = "speed"
	Time            = "time"
	Power           = "power"
	Pressure        = "pressure"
	Energy          = "energy"
	Data            = "data"
	Angle           = "angle"
	FuelConsumption = "fuel_consumption"
)

// Standard construye el catálogo integrado. Cada llamada devuelve un valor nuevo;
// el proceso lo construye una vez al arrancar y lo inyecta donde se necesite.
func Standard() *Catalog {
	return MustNew(StandardCategories()...)
}

// StandardCategories devuelve la definición declarativa del catálogo integrado, en orden de presentación.
func StandardCategories() []entity.Category {
	return []entity.Category{
		{
			ID: Length, Name: "Length", Icon: "📏", BaseUnit: "meter",
			Units: []entity.Unit{
				{ID: "meter", Name: "Meter", Symbol: "m", Conversion: entity.Identity()},
				{ID: "kilometer", Name: "Kilometer", Symbol: "km", Conversion: entity.Times(1000)},
				{ID: "centimeter", Name: "Centimeter", Symbol: "cm", Conversion: entity.Per(100)},
				{ID: "millimeter", Name: "Millimeter", Symbol: "mm", Conversion: entity.Per(1000)},
				{ID: "mile", Name: "Mile", Symbol: "mi", Conversion: entity.Times(1609.34)},
				{ID: "yard", Name: "Yard", Symbol: "yd", Conversion: entity.Times(0.9144)},
				{ID: "foot", Name: "Foot", Symbol: "ft", Conversion: entity.Times(0.3048)},
				{ID: "inch", Name: "Inch", Symbol: "in", Conversion: entity.Times(0.0254)},
			},
		},
		{
			ID: Temperature, Name: "Temperature", Icon: "🌡️", BaseUnit: "celsius",
			Units: []entity.Unit{
				{ID: "celsius", Name: "Celsius", Symbol: "°C", Conversion: entity.Identity()},
				{ID: "fahrenheit", Name: "Fahrenheit", Symbol: "°F", Conversion: entity.Affine(-32, 5, 9)},
				{ID: "kelvin", Name: "Kelvin", Symbol: "K", Conversion: entity.Affine(-273.15, 1, 1)},
			},
		},
		{
			ID: Weight, Name: "Weight/Mass", Icon: "⚖️", BaseUnit: "kilogram",
			Units: []entity.Unit{
				{ID: "kilogram", Name: "Kilogram", Symbol: "kg", Conversion: entity.Identity()},
				{ID: "gram", Name: "Gram", Symbol: "g", Conversion: entity.Per(1000)},
				{ID: "milligram", Name: "Milligram", Symbol: "mg", Conversion: entity.Per(1e6)},
				{ID: "pound", Name: "Pound", Symbol: "lb", Conversion: entity.Times(0.453592)},
				{ID: "ounce", Name: "Ounce", Symbol: "oz", Conversion: entity.Times(0.0283495)},
				{ID: "ton", Name: "Ton (Metric)", Symbol: "t", Conversion: entity.Times(1000)},
			},
		},
		{
			ID: Volume, Name: "Volume", Icon: "🧪", BaseUnit: "liter",
			Units: []entity.Unit{
				{ID: "liter", Name: "Liter", Symbol: "L", Conversion: entity.Identity()},
				{ID: "milliliter", Name: "Milliliter", Symbol: "mL", Conversion: entity.Per(1000)},
				{ID: "gallon", Name: "Gallon (US)", Symbol: "gal", Conversion: entity.Times(3.78541)},
				{ID: "quart", Name: "Quart (US)", Symbol: "qt", Conversion: entity.Times(0.946353)},
				{ID: "pint", Name: "Pint (US)", Symbol: "pt", Conversion: entity.Times(0.473176)},
				{ID: "cup", Name: "Cup (US)", Symbol: "cup", Conversion: entity.Times(0.236588)},
				{ID: "cubicmeter", Name: "Cubic Meter", Symbol: "m³", Conversion: entity.Times(1000)},
			},
		},
		{
			ID: Area, Name: "Area", Icon: "🗺️", BaseUnit: "square_meter",
			Units: []entity.Unit{
				{ID: "square_meter", Name: "Square Meter", Symbol: "m²", Conversion: entity.Identity()},
				{ID: "square_kilometer", Name: "Square Kilometer", Symbol: "km²", Conversion: entity.Times(1e6)},
				{ID: "square_mile", Name: "Square Mile", Symbol: "mi²", Conversion: entity.Times(2.59e6)},
				{ID: "hectare", Name: "Hectare", Symbol: "ha", Conversion: entity.Times(10000)},
				{ID: "acre", Name: "Acre", Symbol: "acre", Conversion: entity.Times(4046.86)},
				{ID: "square_foot", Name: "Square Foot", Symbol: "ft²", Conversion: entity.Times(0.092903)},
			},
		},
		{
			ID: Speed, Name: "Speed", Icon: "🚀", BaseUnit: "m_per_s",
			Units: []entity.Unit{
				{ID: "m_per_s", Name: "Meters/second", Symbol: "m/s", Conversion: entity.Identity()},
				{ID: "km_per_h", Name: "Kilometers/hour", Symbol: "km/h", Conversion: entity.Per(3.6)},
				{ID: "miles_per_h", Name: "Miles/hour", Symbol: "mph", Conversion: entity.Per(2.237)},
				{ID: "knot", Name: "Knot", Symbol: "kn", Conversion: entity.Per(1.944)},
				{ID: "foot_per_s", Name: "Feet/second", Symbol: "ft/s", Conversion: entity.Per(3.281)},
			},
		},
		{
			ID: Time, Name: "Time", Icon: "⏱️", BaseUnit: "second",
			Units: []entity.Unit{
				{ID: "second", Name: "Second", Symbol: "s", Conversion: entity.Identity()},
				{ID: "millisecond", Name: "Millisecond", Symbol: "ms", Conversion: entity.Per(1000)},
				{ID: "minute", Name: "Minute", Symbol: "min", Conversion: entity.Times(60)},
				{ID: "hour", Name: "Hour", Symbol: "h", Conversion: entity.Times(3600)},
				{ID: "day", Name: "Day", Symbol: "d", Conversion: entity.Times(86400)},
				{ID: "week", Name: "Week", Symbol: "wk", Conversion: entity.Times(604800)},
			},
		},
		{
			ID: Power, Name: "Power", Icon: "⚡", BaseUnit: "watt",
			Units: []entity.Unit{
				{ID: "watt", Name: "Watt", Symbol: "W", Conversion: entity.Identity()},
				{ID: "kilowatt", Name: "Kilowatt", Symbol: "kW", Conversion: entity.Times(1000)},
				{ID: "horsepower", Name: "Horsepower", Symbol: "hp", Conversion: entity.Times(745.7)},
			},
		},
		{
			ID: Pressure, Name: "Pressure", Icon: "💨", BaseUnit: "pascal",
			Units: []entity.Unit{
				{ID: "pascal", Name: "Pascal", Symbol: "Pa", Conversion: entity.Identity()},
				{ID: "kilopascal", Name: "Kilopascal", Symbol: "kPa", Conversion: entity.Times(1000)},
				{ID: "bar", Name: "Bar", Symbol: "bar", Conversion: entity.Times(1e5)},
				{ID: "psi", Name: "PSI", Symbol: "psi", Conversion: entity.Times(6894.76)},
				{ID: "atm", Name: "Atmosphere", Symbol: "atm", Conversion: entity.Times(101325)},
			},
		},
		{
			ID: Energy, Name: "Energy", Icon: "🔥", BaseUnit: "joule",
			Units: []entity.Unit{
				{ID: "joule", Name: "Joule", Symbol: "J", Conversion: entity.Identity()},
				{ID: "kilojoule", Name: "Kilojoule", Symbol: "kJ", Conversion: entity.Times(1000)},
				{ID: "calorie", Name: "Calorie", Symbol: "cal", Conversion: entity.Times(4.184)},
				{ID: "kilocalorie", Name: "Kilocalorie", Symbol: "kcal", Conversion: entity.Times(4184)},
				{ID: "watthour", Name: "Watt Hour", Symbol: "Wh", Conversion: entity.Times(3600)},
			},
		},
		{
			ID: Data, Name: "Data Storage", Icon: "💾", BaseUnit: "byte",
			Units: []entity.Unit{
				{ID: "byte", Name: "Byte", Symbol: "B", Conversion: entity.Identity()},
				{ID: "kilobyte", Name: "Kilobyte", Symbol: "KB", Conversion: entity.Times(1 << 10)},
				{ID: "megabyte", Name: "Megabyte", Symbol: "MB", Conversion: entity.Times(1 << 20)},
				{ID: "gigabyte", Name: "Gigabyte", Symbol: "GB", Conversion: entity.Times(1 << 30)},
				{ID: "terabyte", Name: "Terabyte", Symbol: "TB", Conversion: entity.Times(1 << 40)},
			},
		},
		{
			ID: Angle, Name: "Angle", Icon: "📐", BaseUnit: "degree",
			Units: []entity.Unit{
				{ID: "degree", Name: "Degree", Symbol: "°", Conversion: entity.Identity()},
				{ID: "radian", Name: "Radian", Symbol: "rad", Conversion: entity.Times(180 / math.Pi)},
				{ID: "gradian", Name: "Gradian", Symbol: "grad", Conversion: entity.Times(0.9)},
			},
		},
		{
			// Consumo: mpg es recíproco de L/100km; la misma fórmula sirve en ambos sentidos.
			ID: FuelConsumption, Name: "Fuel Consumption", Icon: "⛽", BaseUnit: "l_per_100km",
			Units: []entity.Unit{
				{ID: "l_per_100km", Name: "Liters/100km", Symbol: "L/100km", Conversion: entity.Identity()},
				{ID: "mpg_us", Name: "Miles/gallon (US)", Symbol: "mpg (US)", Conversion: entity.Reciprocal(235.215)},
				{ID: "mpg_uk", Name: "Miles/gallon (UK)", Symbol: "mpg (UK)", Conversion: entity.Reciprocal(282.481)},
			},
		},
	}
}
