package model

// Store is the tenant boundary, every other entity hangs off one.
type Store struct {
	ID         string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name       string      `gorm:"not null;type:varchar(255)" json:"name"`
	UserID     string      `gorm:"not null;type:varchar(255);index" json:"userId"`
	Billboards []Billboard `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	Categories []Category  `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	Colors     []Color     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	Sizes      []Size      `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	Products   []Product   `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	Orders     []Order     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	BaseModel
}

type Billboard struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StoreID  string `gorm:"not null;type:varchar(36);index" json:"storeId"`
	Label    string `gorm:"not null;type:varchar(255)" json:"label"`
	ImageURL string `gorm:"not null;type:text" json:"imageUrl"`
	BaseModel
}

type Category struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StoreID     string `gorm:"not null;type:varchar(36);index" json:"storeId"`
	BillboardID string `gorm:"not null;type:varchar(36);index" json:"billboardId"`
	Name        string `gorm:"not null;type:varchar(255)" json:"name"`
	BaseModel
}

type Color struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StoreID string `gorm:"not null;type:varchar(36);index" json:"storeId"`
	Name    string `gorm:"not null;type:varchar(255)" json:"name"`
	Value   string `gorm:"not null;type:varchar(32)" json:"value"`
	BaseModel
}

type Size struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StoreID string `gorm:"not null;type:varchar(36);index" json:"storeId"`
	Name    string `gorm:"not null;type:varchar(255)" json:"name"`
	Value   string `gorm:"not null;type:varchar(32)" json:"value"`
	BaseModel
}
