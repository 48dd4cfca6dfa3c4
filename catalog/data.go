package catalog

// Embedded subset of the cars-base catalog, used for display-name resolution
// and as a fallback when the remote catalog is unreachable.
var carBrands = []Brand{
	{
		ID:      "VAZ",
		Name:    "Lada (ВАЗ)",
		Country: "Россия",
		Popular: true,
		Models: []CarModel{
			{ID: "VAZ_1111", Name: "1111 Ока", Class: "A", YearFrom: 1987, YearTo: 2008},
			{ID: "VAZ_2107", Name: "2107", Class: "B", YearFrom: 1982, YearTo: 2012},
			{ID: "VAZ_GRANTA", Name: "Granta", Class: "B", YearFrom: 2011},
			{ID: "VAZ_VESTA", Name: "Vesta", Class: "B", YearFrom: 2015},
		},
	},
	{
		ID:      "TOYOTA",
		Name:    "Toyota",
		Country: "Япония",
		Popular: true,
		Models: []CarModel{
			{ID: "TOYOTA_CAMRY", Name: "Camry", Class: "D", YearFrom: 1982},
			{ID: "TOYOTA_COROLLA", Name: "Corolla", Class: "C", YearFrom: 1966},
			{ID: "TOYOTA_RAV4", Name: "RAV4", Class: "J", YearFrom: 1994},
			{ID: "TOYOTA_LAND_CRUISER", Name: "Land Cruiser", Class: "J", YearFrom: 1951},
		},
	},
	{
		ID:      "BMW",
		Name:    "BMW",
		Country: "Германия",
		Popular: true,
		Models: []CarModel{
			{ID: "BMW_3ER", Name: "3 серии", Class: "D", YearFrom: 1975},
			{ID: "BMW_5ER", Name: "5 серии", Class: "E", YearFrom: 1972},
			{ID: "BMW_X5", Name: "X5", Class: "J", YearFrom: 1999},
		},
	},
	{
		ID:      "MERCEDES",
		Name:    "Mercedes-Benz",
		Country: "Германия",
		Popular: true,
		Models: []CarModel{
			{ID: "MERCEDES_C_KLASSE", Name: "C-Класс", Class: "D", YearFrom: 1993},
			{ID: "MERCEDES_E_KLASSE", Name: "E-Класс", Class: "E", YearFrom: 1993},
			{ID: "MERCEDES_GLE", Name: "GLE", Class: "J", YearFrom: 2015},
		},
	},
	{
		ID:      "VOLKSWAGEN",
		Name:    "Volkswagen",
		Country: "Германия",
		Popular: true,
		Models: []CarModel{
			{ID: "VOLKSWAGEN_GOLF", Name: "Golf", Class: "C", YearFrom: 1974},
			{ID: "VOLKSWAGEN_PASSAT", Name: "Passat", Class: "D", YearFrom: 1973},
			{ID: "VOLKSWAGEN_TIGUAN", Name: "Tiguan", Class: "J", YearFrom: 2007},
		},
	},
	{
		ID:      "HYUNDAI",
		Name:    "Hyundai",
		Country: "Южная Корея",
		Popular: true,
		Models: []CarModel{
			{ID: "HYUNDAI_SOLARIS", Name: "Solaris", Class: "B", YearFrom: 2010},
			{ID: "HYUNDAI_CRETA", Name: "Creta", Class: "J", YearFrom: 2014},
			{ID: "HYUNDAI_TUCSON", Name: "Tucson", Class: "J", YearFrom: 2004},
		},
	},
	{
		ID:      "KIA",
		Name:    "Kia",
		Country: "Южная Корея",
		Popular: true,
		Models: []CarModel{
			{ID: "KIA_RIO", Name: "Rio", Class: "B", YearFrom: 1999},
			{ID: "KIA_SPORTAGE", Name: "Sportage", Class: "J", YearFrom: 1993},
			{ID: "KIA_CEED", Name: "Ceed", Class: "C", YearFrom: 2006},
		},
	},
}
