package seeder

func Defaults() []Seeder {
	return []Seeder{
		CategoriesSeeder{},
		LocationsSeeder{},
		ServicePackagesSeeder{},
		DemoUsersSeeder{},
		DemoJobsSeeder{},
	}
}
