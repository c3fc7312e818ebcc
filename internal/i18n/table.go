package i18n

// Table maps a locale and a key to a display string. It is data only;
// adding a locale means adding one more inner map.
type Table map[Locale]map[string]string

// Lookup returns the string stored for key under locale.
func (t Table) Lookup(l Locale, key string) (string, bool) {
	messages, ok := t[l]
	if !ok {
		return "", false
	}
	v, ok := messages[key]
	return v, ok
}

// Keys returns every key defined for locale.
func (t Table) Keys(l Locale) []string {
	keys := make([]string, 0, len(t[l]))
	for k := range t[l] {
		keys = append(keys, k)
	}
	return keys
}

// Messages returns a copy of every message defined for locale.
func (t Table) Messages(l Locale) map[string]string {
	out := make(map[string]string, len(t[l]))
	for k, v := range t[l] {
		out[k] = v
	}
	return out
}

// Translations is the storefront's string table.
var Translations = Table{
	English: {
		// Brand
		"brand.name":    "Sheel",
		"brand.tagline": "Your trusted partner for buying, selling and renting property across the Kingdom.",

		// Navigation
		"nav.home":       "Home",
		"nav.properties": "Properties",
		"nav.create":     "Add Property",
		"nav.dashboard":  "Dashboard",
		"nav.language":   "العربية",

		// Hero Section
		"hero.title":              "Find Your Dream Property",
		"hero.subtitle":           "Discover the perfect home, apartment, or commercial space with Sheel",
		"hero.search.placeholder": "Search by location, property type...",
		"hero.search.button":      "Search Properties",

		// Home
		"home.featured":          "Featured Properties",
		"home.featured.subtitle": "Handpicked listings from our latest additions",
		"home.empty.title":       "No Properties Available",
		"home.empty.body":        "Be the first to list a property on Sheel.",
		"home.view_all":          "View All Properties",
		"home.cta.title":         "Have a Property to Sell or Rent?",
		"home.cta.body":          "List it on Sheel and reach thousands of buyers and tenants.",

		// Property Types
		"property.for.sale":   "For Sale",
		"property.for.rent":   "For Rent",
		"property.house":      "House",
		"property.apartment":  "Apartment",
		"property.condo":      "Condo",
		"property.townhouse":  "Townhouse",
		"property.land":       "Land",
		"property.commercial": "Commercial",

		// Property Details
		"property.bedrooms":    "Bedrooms",
		"property.bathrooms":   "Bathrooms",
		"property.sqft":        "Sq Ft",
		"property.price":       "Price",
		"property.contact":     "Contact Agent",
		"property.features":    "Features",
		"property.description": "Description",
		"property.location":    "Location",

		"listing.location.unknown": "Location not specified",
		"price.currency":           "SAR",
		"price.per_month":          "/month",

		// Statuses
		"status.active":   "Active",
		"status.sold":     "Sold",
		"status.rented":   "Rented",
		"status.inactive": "Inactive",

		// Forms
		"form.title":            "Property Title",
		"form.description":      "Description",
		"form.price":            "Price",
		"form.transaction_type": "Listing Type",
		"form.category":         "Property Type",
		"form.bedrooms":         "Bedrooms",
		"form.bathrooms":        "Bathrooms",
		"form.sqft":             "Square Feet",
		"form.address":          "Address",
		"form.city":             "City",
		"form.contact_name":     "Contact Name",
		"form.phone":            "Phone",
		"form.email":            "Email",
		"form.password":         "Password",
		"form.images":           "Images",
		"form.images.hint":      "Up to 10 images",
		"form.submit":           "Publish Listing",
		"form.cancel":           "Cancel",
		"form.required":         "Required",
		"form.select":           "Select...",

		// Create listing
		"create.title":    "Create New Listing",
		"create.subtitle": "Fill out the details below to list your property on Sheel",
		"create.basic":    "Basic Information",
		"create.details":  "Property Details",
		"create.location": "Location",
		"create.contact":  "Contact Information",
		"create.images":   "Property Images",

		// Property features
		"feature.parking":          "Parking Included",
		"feature.gym":              "Gym Access",
		"feature.pool":             "Pool",
		"feature.concierge":        "Concierge",
		"feature.city_views":       "City Views",
		"feature.modern_kitchen":   "Modern Kitchen",
		"feature.hardwood_floors":  "Hardwood Floors",
		"feature.in_unit_laundry":  "In-Unit Laundry",
		"feature.balcony":          "Balcony",
		"feature.pet_friendly":     "Pet Friendly",
		"feature.fireplace":        "Fireplace",
		"feature.garden":           "Garden",
		"feature.garage":           "Garage",
		"feature.rooftop":          "Rooftop Access",
		"feature.security":         "Security System",
		"feature.air_conditioning": "Air Conditioning",
		"feature.heating":          "Heating",
		"feature.dishwasher":       "Dishwasher",
		"feature.walk_in_closet":   "Walk-in Closet",
		"feature.storage":          "Storage Unit",

		// Dashboard
		"dashboard.title":           "Dashboard",
		"dashboard.subtitle":        "Manage your property listings",
		"dashboard.active.listings": "Active Listings",
		"dashboard.total.listings":  "Total Listings",
		"dashboard.total.views":     "Total Views",
		"dashboard.inquiries":       "Inquiries",
		"dashboard.new.listing":     "New Listing",
		"dashboard.filter.all":      "All",
		"dashboard.table.property":  "Property",
		"dashboard.table.status":    "Status",
		"dashboard.table.views":     "Views",
		"dashboard.table.created":   "Created",
		"dashboard.table.actions":   "Actions",
		"dashboard.empty.all":       "You have no listings yet.",
		"dashboard.empty.active":    "You have no active listings.",
		"dashboard.empty.sold":      "You have no sold listings.",
		"dashboard.empty.inactive":  "You have no inactive listings.",
		"dashboard.empty.cta":       "Create your first listing",
		"dashboard.delete.confirm":  "Delete this listing?",

		// Auth
		"auth.required.title":     "Sign In Required",
		"auth.required.create":    "Please sign in to create a property listing",
		"auth.required.dashboard": "Please sign in to manage your listings",
		"auth.sign_in":            "Sign In",
		"auth.sign_out":           "Sign Out",
		"auth.login.title":        "Welcome Back",
		"auth.login.subtitle":     "Sign in to manage your properties",

		// Notifications
		"success.listing_created":    "Property listed successfully!",
		"success.listing_deleted":    "Property deleted successfully",
		"success.language_changed":   "Language updated",
		"error.sign_in_first":        "Please sign in first",
		"error.invalid_credentials":  "Invalid email or password",
		"error.owner_exists":         "An account with this email already exists",
		"error.required_fields":      "Please fill in all required fields",
		"error.invalid_price":        "Please enter a valid price",
		"error.invalid_option":       "Please choose a valid option",
		"error.invalid_email":        "Please enter a valid email address",
		"error.too_many_images":      "You can upload a maximum of 10 images",
		"error.too_many_submissions": "Too many listings submitted, please try again later",
		"error.create_listing":       "Error creating listing",
		"error.delete_listing":       "Error deleting listing",
		"error.listing_not_found":    "Listing not found",
		"error.load_listings":        "Error loading properties",
		"error.unsupported_language": "This language is not supported",
		"error.internal":             "Something went wrong, please try again",
		"error.not_found":            "Page not found",
		"error.too_many_requests":    "Too many requests, please slow down",

		// Common
		"common.loading":  "Loading...",
		"common.save":     "Save",
		"common.edit":     "Edit",
		"common.delete":   "Delete",
		"common.view":     "View",
		"common.back":     "Back",
		"common.next":     "Next",
		"common.previous": "Previous",

		// Footer
		"footer.about":       "About Sheel",
		"footer.contact":     "Contact Us",
		"footer.privacy":     "Privacy Policy",
		"footer.terms":       "Terms of Service",
		"footer.rights":      "All rights reserved",
		"footer.quick_links": "Quick Links",
		"footer.legal":       "Legal",

		"whatsapp.label":   "Chat with us on WhatsApp",
		"whatsapp.message": "Hello! I found your real estate platform and I'm interested in learning more.",
	},
	Arabic: {
		// Brand
		"brand.name":    "شيل",
		"brand.tagline": "شريكك الموثوق لشراء وبيع وتأجير العقارات في جميع أنحاء المملكة.",

		// Navigation
		"nav.home":       "الرئيسية",
		"nav.properties": "العقارات",
		"nav.create":     "إضافة عقار",
		"nav.dashboard":  "لوحة التحكم",
		"nav.language":   "English",

		// Hero Section
		"hero.title":              "اعثر على عقار أحلامك",
		"hero.subtitle":           "اكتشف المنزل أو الشقة أو المساحة التجارية المثالية مع شيل",
		"hero.search.placeholder": "البحث بالموقع، نوع العقار...",
		"hero.search.button":      "البحث عن العقارات",

		// Home
		"home.featured":          "العقارات المميزة",
		"home.featured.subtitle": "إعلانات مختارة من أحدث الإضافات",
		"home.empty.title":       "لا توجد عقارات متاحة",
		"home.empty.body":        "كن أول من يضيف عقاراً على شيل.",
		"home.view_all":          "عرض جميع العقارات",
		"home.cta.title":         "هل لديك عقار للبيع أو الإيجار؟",
		"home.cta.body":          "أضفه على شيل وتواصل مع آلاف المشترين والمستأجرين.",

		// Property Types
		"property.for.sale":   "للبيع",
		"property.for.rent":   "للإيجار",
		"property.house":      "منزل",
		"property.apartment":  "شقة",
		"property.condo":      "شقة مفروشة",
		"property.townhouse":  "فيلا",
		"property.land":       "أرض",
		"property.commercial": "تجاري",

		// Property Details
		"property.bedrooms":    "غرف النوم",
		"property.bathrooms":   "دورات المياه",
		"property.sqft":        "متر مربع",
		"property.price":       "السعر",
		"property.contact":     "اتصل بالوكيل",
		"property.features":    "المميزات",
		"property.description": "الوصف",
		"property.location":    "الموقع",

		"listing.location.unknown": "الموقع غير محدد",
		"price.currency":           "ريال",
		"price.per_month":          "/شهر",

		// Statuses
		"status.active":   "نشط",
		"status.sold":     "مباع",
		"status.rented":   "مؤجر",
		"status.inactive": "غير نشط",

		// Forms
		"form.title":            "عنوان العقار",
		"form.description":      "الوصف",
		"form.price":            "السعر",
		"form.transaction_type": "نوع الإعلان",
		"form.category":         "نوع العقار",
		"form.bedrooms":         "غرف النوم",
		"form.bathrooms":        "دورات المياه",
		"form.sqft":             "المساحة بالمتر المربع",
		"form.address":          "العنوان",
		"form.city":             "المدينة",
		"form.contact_name":     "اسم جهة الاتصال",
		"form.phone":            "الهاتف",
		"form.email":            "البريد الإلكتروني",
		"form.password":         "كلمة المرور",
		"form.images":           "الصور",
		"form.images.hint":      "حتى 10 صور",
		"form.submit":           "نشر الإعلان",
		"form.cancel":           "إلغاء",
		"form.required":         "مطلوب",
		"form.select":           "اختر...",

		// Create listing
		"create.title":    "إنشاء إعلان جديد",
		"create.subtitle": "املأ التفاصيل أدناه لإدراج عقارك في شيل",
		"create.basic":    "المعلومات الأساسية",
		"create.details":  "تفاصيل العقار",
		"create.location": "الموقع",
		"create.contact":  "معلومات الاتصال",
		"create.images":   "صور العقار",

		// Property features
		"feature.parking":          "موقف سيارات مشمول",
		"feature.gym":              "صالة رياضية",
		"feature.pool":             "مسبح",
		"feature.concierge":        "خدمة الكونسيرج",
		"feature.city_views":       "إطلالة على المدينة",
		"feature.modern_kitchen":   "مطبخ عصري",
		"feature.hardwood_floors":  "أرضيات خشبية",
		"feature.in_unit_laundry":  "غسالة في الوحدة",
		"feature.balcony":          "شرفة",
		"feature.pet_friendly":     "مسموح بالحيوانات الأليفة",
		"feature.fireplace":        "مدفأة",
		"feature.garden":           "حديقة",
		"feature.garage":           "جراج",
		"feature.rooftop":          "الوصول إلى السطح",
		"feature.security":         "نظام أمني",
		"feature.air_conditioning": "تكييف هواء",
		"feature.heating":          "تدفئة",
		"feature.dishwasher":       "غسالة أطباق",
		"feature.walk_in_closet":   "خزانة ملابس واسعة",
		"feature.storage":          "وحدة تخزين",

		// Dashboard
		"dashboard.title":           "لوحة التحكم",
		"dashboard.subtitle":        "إدارة إعلانات العقارات الخاصة بك",
		"dashboard.active.listings": "الإعلانات النشطة",
		"dashboard.total.listings":  "إجمالي الإعلانات",
		"dashboard.total.views":     "إجمالي المشاهدات",
		"dashboard.inquiries":       "الاستفسارات",
		"dashboard.new.listing":     "إعلان جديد",
		"dashboard.filter.all":      "الكل",
		"dashboard.table.property":  "العقار",
		"dashboard.table.status":    "الحالة",
		"dashboard.table.views":     "المشاهدات",
		"dashboard.table.created":   "تاريخ الإنشاء",
		"dashboard.table.actions":   "الإجراءات",
		"dashboard.empty.all":       "لا توجد لديك إعلانات بعد.",
		"dashboard.empty.active":    "لا توجد لديك إعلانات نشطة.",
		"dashboard.empty.sold":      "لا توجد لديك عقارات مباعة.",
		"dashboard.empty.inactive":  "لا توجد لديك إعلانات غير نشطة.",
		"dashboard.empty.cta":       "أنشئ إعلانك الأول",
		"dashboard.delete.confirm":  "هل تريد حذف هذا الإعلان؟",

		// Auth
		"auth.required.title":     "تسجيل الدخول مطلوب",
		"auth.required.create":    "يرجى تسجيل الدخول لإنشاء إعلان عقاري",
		"auth.required.dashboard": "يرجى تسجيل الدخول لإدارة إعلاناتك",
		"auth.sign_in":            "تسجيل الدخول",
		"auth.sign_out":           "تسجيل الخروج",
		"auth.login.title":        "مرحباً بعودتك",
		"auth.login.subtitle":     "سجّل الدخول لإدارة عقاراتك",

		// Notifications
		"success.listing_created":    "تم نشر العقار بنجاح!",
		"success.listing_deleted":    "تم حذف العقار بنجاح",
		"success.language_changed":   "تم تغيير اللغة",
		"error.sign_in_first":        "يرجى تسجيل الدخول أولاً",
		"error.invalid_credentials":  "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"error.owner_exists":         "يوجد حساب بهذا البريد الإلكتروني بالفعل",
		"error.required_fields":      "يرجى ملء جميع الحقول المطلوبة",
		"error.invalid_price":        "يرجى إدخال سعر صحيح",
		"error.invalid_option":       "يرجى اختيار قيمة صحيحة",
		"error.invalid_email":        "يرجى إدخال بريد إلكتروني صحيح",
		"error.too_many_images":      "يمكنك رفع 10 صور كحد أقصى",
		"error.too_many_submissions": "تم إرسال عدد كبير من الإعلانات، يرجى المحاولة لاحقاً",
		"error.create_listing":       "حدث خطأ أثناء إنشاء الإعلان",
		"error.delete_listing":       "حدث خطأ أثناء حذف الإعلان",
		"error.listing_not_found":    "الإعلان غير موجود",
		"error.load_listings":        "حدث خطأ أثناء تحميل العقارات",
		"error.unsupported_language": "هذه اللغة غير مدعومة",
		"error.internal":             "حدث خطأ ما، يرجى المحاولة مرة أخرى",
		"error.not_found":            "الصفحة غير موجودة",
		"error.too_many_requests":    "طلبات كثيرة جداً، يرجى التمهل",

		// Common
		"common.loading":  "جاري التحميل...",
		"common.save":     "حفظ",
		"common.edit":     "تعديل",
		"common.delete":   "حذف",
		"common.view":     "عرض",
		"common.back":     "رجوع",
		"common.next":     "التالي",
		"common.previous": "السابق",

		// Footer
		"footer.about":       "حول شيل",
		"footer.contact":     "اتصل بنا",
		"footer.privacy":     "سياسة الخصوصية",
		"footer.terms":       "شروط الخدمة",
		"footer.rights":      "جميع الحقوق محفوظة",
		"footer.quick_links": "روابط سريعة",
		"footer.legal":       "قانوني",

		"whatsapp.label":   "تواصل معنا عبر واتساب",
		"whatsapp.message": "مرحباً! وجدت منصتكم العقارية وأرغب في معرفة المزيد.",
	},
}
